package vizcanvas

// SurfaceOption configures a Surface during acquisition.
//
// Example:
//
//	// Default: backing store follows the device pixel ratio
//	s, _ := vizcanvas.Acquire(host, 800, 600)
//
//	// One backing pixel per logical unit, whatever the display
//	s, _ := vizcanvas.Acquire(host, 800, 600, vizcanvas.WithScaling(false))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	scaling bool
	name    string
}

// defaultSurfaceOptions returns the default surface options.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		scaling: true,
	}
}

// WithScaling enables or disables device-pixel-ratio compensation.
// When disabled the surface behaves as if the ratio were 1.
func WithScaling(enabled bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.scaling = enabled
	}
}

// WithName attaches a name to the surface. It only appears in log records,
// which makes it easier to tell several surfaces on one host apart.
func WithName(name string) SurfaceOption {
	return func(o *surfaceOptions) {
		o.name = name
	}
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDefaultSurfaceOptions sets options applied to every surface acquired
// through the manager, before the per-call options.
func WithDefaultSurfaceOptions(opts ...SurfaceOption) ManagerOption {
	return func(m *Manager) {
		m.defaults = append(m.defaults, opts...)
	}
}
