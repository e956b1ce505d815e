package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/vizcanvas/host/ebitenhost"
	"github.com/gogpu/vizcanvas/host/gogpuhost"
	"github.com/gogpu/vizcanvas/loop"
	"github.com/gogpu/vizcanvas/scene"
)

func TestRenderToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	w, h, err := renderToFile(scene.Default(), 2, 0, out)
	if err != nil {
		t.Fatalf("renderToFile: %v", err)
	}
	if w != 1280 || h != 800 {
		t.Errorf("backing size = %dx%d, want 1280x800", w, h)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1280 || b.Dy() != 800 {
		t.Errorf("png size = %v, want 1280x800", b)
	}
}

func TestRenderToFile_BadPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	if _, _, err := renderToFile(scene.Default(), 1, 0, out); err == nil {
		t.Error("renderToFile() into a missing directory should fail")
	}
}

func TestSampleGraph(t *testing.T) {
	graph, err := sampleGraph("sin", -3.14, 3.14, 40, 8)
	if err != nil {
		t.Fatalf("sampleGraph: %v", err)
	}
	if !strings.Contains(graph, "sin(x)") {
		t.Errorf("graph has no caption:\n%s", graph)
	}

	tests := []struct {
		name       string
		fn         string
		xMin, xMax float64
		w, h       int
	}{
		{"unknown", "exp", 0, 1, 10, 5},
		{"range", "sin", 1, 1, 10, 5},
		{"width", "sin", 0, 1, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sampleGraph(tt.fn, tt.xMin, tt.xMax, tt.w, tt.h); err == nil {
				t.Error("sampleGraph() should fail")
			}
		})
	}
}

func TestSamples(t *testing.T) {
	got := samples(func(x float64) float64 { return x }, 0, 10, 10)
	if len(got) != 11 {
		t.Fatalf("len = %d, want 11", len(got))
	}
	if got[0] != 0 || got[10] != 10 || got[5] != 5 {
		t.Errorf("samples = %v", got)
	}
}

func TestWatchScene_WritesOnStart(t *testing.T) {
	dir := t.TempDir()
	view := filepath.Join(dir, "viewport.yaml")
	if err := os.WriteFile(view, []byte("device_pixel_ratio: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")
	sc, err := scene.Parse([]byte("width: 40\nheight: 20\ncommands: [{op: circle, x: 20, y: 10, r: 5, fill: red}]\n"))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	var (
		mu   sync.Mutex
		msgs []string
	)
	err = watchScene(ctx, sc, view, out, 0, func(s string) {
		mu.Lock()
		msgs = append(msgs, s)
		mu.Unlock()
	})
	if err != nil && ctx.Err() == nil {
		t.Fatalf("watchScene: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 30 {
		t.Errorf("png size = %v, want 60x30", b)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) < 2 {
		t.Errorf("messages = %q, want watching + wrote", msgs)
	}
}

func TestNewWindowHost(t *testing.T) {
	l := loop.New()

	win, err := newWindowHost("gogpu", "t", 100, 50, l)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := win.(*gogpuhost.Window); !ok {
		t.Errorf("gogpu backend = %T", win)
	}

	win, err = newWindowHost("ebiten", "t", 100, 50, l)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := win.(*ebitenhost.Window); !ok {
		t.Errorf("ebiten backend = %T", win)
	}

	if _, err := newWindowHost("sdl", "t", 100, 50, l); err == nil || !strings.Contains(err.Error(), "sdl") {
		t.Errorf("unknown backend error = %v", err)
	}
}

func TestWindowCommand_BackendFlag(t *testing.T) {
	cmd := newWindowCommand()
	f := cmd.Flags().Lookup("backend")
	if f == nil {
		t.Fatal("no --backend flag")
	}
	if f.DefValue != "gogpu" {
		t.Errorf("--backend default = %q, want gogpu", f.DefValue)
	}
}
