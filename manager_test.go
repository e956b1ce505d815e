package vizcanvas

import (
	"errors"
	"testing"
)

func TestNewManager_NilHost(t *testing.T) {
	if _, err := NewManager(nil); !errors.Is(err, ErrNilHost) {
		t.Errorf("NewManager(nil) error = %v, want ErrNilHost", err)
	}
}

func TestManager_TracksSurfaces(t *testing.T) {
	host := NewHeadlessHost(2)
	m, err := NewManager(host)
	if err != nil {
		t.Fatal(err)
	}

	a, err := m.Acquire(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Acquire(50, 50)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	m.Release(a)
	m.Release(a)
	if m.Len() != 1 {
		t.Errorf("Len() = %d after releasing one surface twice, want 1", m.Len())
	}

	b.Release()
	if m.Len() != 0 {
		t.Errorf("Len() = %d after direct Release, want 0", m.Len())
	}
	if host.Listeners() != 0 {
		t.Errorf("Listeners() = %d, want 0", host.Listeners())
	}
}

func TestManager_ReleaseAll(t *testing.T) {
	host := NewHeadlessHost(1)
	m, err := NewManager(host)
	if err != nil {
		t.Fatal(err)
	}
	var surfaces []*Surface
	for i := 0; i < 5; i++ {
		s, err := m.Acquire(10, 10)
		if err != nil {
			t.Fatal(err)
		}
		surfaces = append(surfaces, s)
	}

	m.ReleaseAll()
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	for i, s := range surfaces {
		if s.State() != StateReleased {
			t.Errorf("surface %d State() = %v, want Released", i, s.State())
		}
	}
	if host.Listeners() != 0 {
		t.Errorf("Listeners() = %d, want 0", host.Listeners())
	}
}

func TestManager_DefaultOptions(t *testing.T) {
	m, err := NewManager(NewHeadlessHost(2), WithDefaultSurfaceOptions(WithScaling(false)))
	if err != nil {
		t.Fatal(err)
	}
	defer m.ReleaseAll()

	s, err := m.Acquire(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := s.BackingSize(); w != 10 {
		t.Errorf("default WithScaling(false) ignored: backing width %d", w)
	}

	s2, err := m.Acquire(10, 10, WithScaling(true))
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := s2.BackingSize(); w != 20 {
		t.Errorf("per-call option should override default: backing width %d", w)
	}
}

func TestManager_AcquireError(t *testing.T) {
	m, err := NewManager(NewHeadlessHost(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Acquire(-1, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Acquire(-1, 5) error = %v, want ErrInvalidDimensions", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after failed Acquire, want 0", m.Len())
	}
}
