package vizcanvas

import (
	"sync"
)

// Manager acquires surfaces on one host and keeps track of the ones that
// are still live, so a host that shuts down can release them all at once.
//
// Manager is safe for concurrent use; the surfaces it hands out are not.
type Manager struct {
	host     Host
	defaults []SurfaceOption

	mu       sync.Mutex
	surfaces map[*Surface]struct{}
}

// NewManager creates a manager for host.
func NewManager(host Host, opts ...ManagerOption) (*Manager, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	m := &Manager{
		host:     host,
		surfaces: make(map[*Surface]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Host returns the host surfaces are acquired on.
func (m *Manager) Host() Host {
	return m.host
}

// Acquire acquires a surface on the manager's host. The manager's default
// options are applied before opts.
func (m *Manager) Acquire(width, height float64, opts ...SurfaceOption) (*Surface, error) {
	all := make([]SurfaceOption, 0, len(m.defaults)+len(opts))
	all = append(all, m.defaults...)
	all = append(all, opts...)

	s, err := Acquire(m.host, width, height, all...)
	if err != nil {
		return nil, err
	}
	s.manager = m

	m.mu.Lock()
	m.surfaces[s] = struct{}{}
	m.mu.Unlock()
	return s, nil
}

// Release releases s. It is equivalent to s.Release and equally idempotent.
func (m *Manager) Release(s *Surface) {
	if s == nil {
		return
	}
	s.Release()
}

// Len returns the number of live surfaces.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.surfaces)
}

// ReleaseAll releases every live surface.
func (m *Manager) ReleaseAll() {
	m.mu.Lock()
	live := make([]*Surface, 0, len(m.surfaces))
	for s := range m.surfaces {
		live = append(live, s)
	}
	m.mu.Unlock()

	for _, s := range live {
		s.Release()
	}
}

func (m *Manager) forget(s *Surface) {
	m.mu.Lock()
	delete(m.surfaces, s)
	m.mu.Unlock()
}
