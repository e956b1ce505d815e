// Package vizcanvas provides drawable surfaces for small interactive
// visualizations built on gg.
//
// # Overview
//
// A visualization acquires a [Surface] of a given logical size from a [Host]
// (the environment that knows the device pixel ratio and reports viewport
// resizes), then redraws the whole frame through the paint package every
// time its state changes. The surface keeps the backing store at
// logical size times device pixel ratio and applies a single uniform scale
// transform, so drawing code only ever deals in logical units.
//
// # Quick Start
//
//	host := vizcanvas.NewHeadlessHost(2)
//	s, err := vizcanvas.Acquire(host, 800, 600)
//	if err != nil {
//		return err
//	}
//	defer s.Release()
//
//	s.Draw(func(dc *gg.Context) {
//		paint.Fill(dc, gg.SolidHex("#000000"), 800, 600)
//		paint.Circle(dc, 400, 300, 50, paint.Style{Fill: gg.SolidHex("#ff0000")})
//	})
//
// # Lifecycle
//
// A surface is NotReady until its host is attached, Ready once a context
// could be created, and Released after [Surface.Release]. Context returns
// nil in every state but Ready; callers skip the frame in that case.
//
// Acquire registers one resize listener on the host and Release removes it.
// Release is idempotent.
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use. Drive it from a single goroutine,
// typically the loop package's event loop. Hosts that observe changes on
// other goroutines should post them onto that loop.
package vizcanvas
