package viewer

import (
	"sync"
	"sync/atomic"

	"github.com/Faultbox/wireview/pkg/formats"
)

// Snapshot is an immutable view of the scene. The model it points to is
// never mutated after it is published.
type Snapshot struct {
	Model *formats.Model
	Path  string

	// Err is the most recent load failure, cleared by the next success.
	Err error
}

// Scene owns the single live model. Loads may run on any goroutine; the
// render loop always sees either the old or the new model, never a mix.
type Scene struct {
	current atomic.Pointer[Snapshot]
	loadMu  sync.Mutex
	load    func(path string) (*formats.Model, error)
}

// NewScene creates an empty scene that reads models with formats.LoadModel.
func NewScene() *Scene {
	s := &Scene{load: formats.LoadModel}
	s.current.Store(&Snapshot{})
	return s
}

// Snapshot returns the current scene state.
func (s *Scene) Snapshot() Snapshot {
	return *s.current.Load()
}

// Load parses path and, on success, replaces the current model wholesale.
// On failure the current model and path are kept and the error is recorded.
func (s *Scene) Load(path string) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	return s.loadLocked(path)
}

// Reload re-reads path only if it is still the current model. The check and
// the swap happen under the load lock, so a reload that lost a race with
// Load or Clear is dropped. It reports whether a reload was attempted.
func (s *Scene) Reload(path string) (bool, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.Snapshot().Path != path {
		return false, nil
	}
	return true, s.loadLocked(path)
}

func (s *Scene) loadLocked(path string) error {
	m, err := s.load(path)
	if err != nil {
		prev := s.Snapshot()
		prev.Err = err
		s.current.Store(&prev)
		return err
	}

	s.current.Store(&Snapshot{Model: m, Path: path})
	return nil
}

// Clear discards the current model.
func (s *Scene) Clear() {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	s.current.Store(&Snapshot{})
}
