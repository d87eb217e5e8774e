package viewer

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Faultbox/wireview/pkg/formats"
	"github.com/Faultbox/wireview/pkg/math"
)

const (
	modelA = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	modelB = "v 5 5 5\nv 6 5 5\nv 5 6 5\nv 5 5 6\nf 1 2 3\nf 1 3 4\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSceneStartsEmpty(t *testing.T) {
	snap := NewScene().Snapshot()
	if !snap.Model.Empty() || snap.Path != "" || snap.Err != nil {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestSceneLoadReplaces(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.obj", modelA)
	pathB := writeFile(t, dir, "b.obj", modelB)

	s := NewScene()
	if err := s.Load(pathA); err != nil {
		t.Fatalf("Load(a) error: %v", err)
	}
	a := s.Snapshot()
	if len(a.Model.Vertices) != 3 || a.Path != pathA {
		t.Fatalf("unexpected snapshot after loading a: %+v", a)
	}

	if err := s.Load(pathB); err != nil {
		t.Fatalf("Load(b) error: %v", err)
	}
	b := s.Snapshot()
	if b.Model == a.Model {
		t.Fatal("expected a new model after loading b")
	}
	if len(b.Model.Vertices) != 4 || len(b.Model.Indices) != 6 {
		t.Errorf("expected 4 vertices and 6 indices, got %d and %d", len(b.Model.Vertices), len(b.Model.Indices))
	}
	for _, v := range b.Model.Vertices {
		if v.X < 5 {
			t.Errorf("vertex %v left over from model a", v)
		}
	}
	if b.Path != pathB {
		t.Errorf("expected path %s, got %s", pathB, b.Path)
	}

	// The earlier snapshot is untouched.
	if len(a.Model.Vertices) != 3 {
		t.Error("loading b mutated a's model")
	}
}

func TestSceneLoadMissingKeepsModel(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.obj", modelA)

	s := NewScene()
	if err := s.Load(pathA); err != nil {
		t.Fatalf("Load(a) error: %v", err)
	}
	before := s.Snapshot()

	err := s.Load(filepath.Join(dir, "missing.obj"))
	if !errors.Is(err, formats.ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}

	after := s.Snapshot()
	if after.Model != before.Model || after.Path != before.Path {
		t.Error("failed load changed the current model")
	}
	if !errors.Is(after.Err, formats.ErrOpen) {
		t.Errorf("expected recorded ErrOpen, got %v", after.Err)
	}

	if err := s.Load(pathA); err != nil {
		t.Fatalf("Load(a) error: %v", err)
	}
	if s.Snapshot().Err != nil {
		t.Error("successful load should clear the error")
	}
}

func TestSceneLoadMalformedKeepsModel(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.obj", modelA)
	bad := writeFile(t, dir, "bad.obj", "v 0 0 0\nf 1 2 3\n")

	s := NewScene()
	if err := s.Load(pathA); err != nil {
		t.Fatalf("Load(a) error: %v", err)
	}
	before := s.Snapshot()

	if err := s.Load(bad); !errors.Is(err, formats.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if s.Snapshot().Model != before.Model {
		t.Error("malformed load changed the current model")
	}
}

func TestSceneClear(t *testing.T) {
	dir := t.TempDir()
	s := NewScene()
	if err := s.Load(writeFile(t, dir, "a.obj", modelA)); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	s.Clear()
	snap := s.Snapshot()
	if !snap.Model.Empty() || snap.Path != "" {
		t.Errorf("expected empty scene after Clear, got %+v", snap)
	}
}

func TestSceneConcurrentLoads(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.obj", modelA)
	pathB := writeFile(t, dir, "b.obj", modelB)

	s := NewScene()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := pathA
			if i%2 == 1 {
				path = pathB
			}
			_ = s.Load(path)
		}(i)
	}

	// Every snapshot seen while loads race is internally consistent.
	for i := 0; i < 200; i++ {
		snap := s.Snapshot()
		if snap.Model.Empty() {
			continue
		}
		want := 3
		if snap.Path == pathB {
			want = 4
		}
		if len(snap.Model.Vertices) != want {
			t.Fatalf("snapshot mixes models: %s has %d vertices", snap.Path, len(snap.Model.Vertices))
		}
	}
	wg.Wait()
}

func fakeModel(n int) *formats.Model {
	return &formats.Model{Vertices: make([]math.Vec3, n)}
}

func TestSceneReloadLosesToNewerLoad(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	s := NewScene()
	s.load = func(path string) (*formats.Model, error) {
		if path == "b.obj" {
			close(entered)
			<-release
			return fakeModel(4), nil
		}
		return fakeModel(1), nil
	}
	if err := s.Load("a.obj"); err != nil {
		t.Fatalf("Load(a) error: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = s.Load("b.obj")
	}()
	<-entered

	// A debounced reload of a.obj queued up while b.obj is loading.
	reloaded := make(chan bool, 1)
	go func() {
		defer wg.Done()
		ok, _ := s.Reload("a.obj")
		reloaded <- ok
	}()
	close(release)
	wg.Wait()

	if <-reloaded {
		t.Error("expected reload of a.obj to be skipped")
	}
	snap := s.Snapshot()
	if snap.Path != "b.obj" || len(snap.Model.Vertices) != 4 {
		t.Errorf("expected b.obj with 4 vertices, got %q with %d", snap.Path, len(snap.Model.Vertices))
	}
}

func TestSceneReloadAfterClear(t *testing.T) {
	s := NewScene()
	s.load = func(string) (*formats.Model, error) { return fakeModel(3), nil }
	if err := s.Load("a.obj"); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	s.Clear()

	ok, err := s.Reload("a.obj")
	if ok || err != nil {
		t.Errorf("Reload() = %v, %v; want skipped", ok, err)
	}
	if !s.Snapshot().Model.Empty() {
		t.Error("reload brought back a cleared model")
	}
}

func TestSceneReloadCurrent(t *testing.T) {
	n := 3
	s := NewScene()
	s.load = func(string) (*formats.Model, error) { return fakeModel(n), nil }
	if err := s.Load("a.obj"); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	n = 5
	ok, err := s.Reload("a.obj")
	if !ok || err != nil {
		t.Fatalf("Reload() = %v, %v", ok, err)
	}
	if got := len(s.Snapshot().Model.Vertices); got != 5 {
		t.Errorf("expected 5 vertices after reload, got %d", got)
	}
}

func TestSceneReloadFailureKeepsModel(t *testing.T) {
	fail := false
	s := NewScene()
	s.load = func(string) (*formats.Model, error) {
		if fail {
			return nil, formats.ErrTruncatedRecord
		}
		return fakeModel(3), nil
	}
	if err := s.Load("a.obj"); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	before := s.Snapshot()

	fail = true
	ok, err := s.Reload("a.obj")
	if !ok || !errors.Is(err, formats.ErrTruncatedRecord) {
		t.Fatalf("Reload() = %v, %v", ok, err)
	}
	after := s.Snapshot()
	if after.Model != before.Model || after.Path != "a.obj" {
		t.Error("failed reload replaced the model")
	}
	if !errors.Is(after.Err, formats.ErrTruncatedRecord) {
		t.Errorf("expected recorded error, got %v", after.Err)
	}
}
