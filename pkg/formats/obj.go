package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/wireview/pkg/math"
)

// Model file errors.
var (
	ErrOpen            = errors.New("cannot open model file")
	ErrBadNumber       = errors.New("malformed number")
	ErrTruncatedRecord = errors.New("record ends before all fields were read")
	ErrIndexOutOfRange = errors.New("face index out of range")
)

// ParseError reports where a model file stopped making sense.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Model is a triangle mesh: object-space vertices plus 1-based vertex
// indices grouped in triples.
type Model struct {
	Vertices []math.Vec3
	Indices  []int
}

// Empty reports whether the model has no vertices.
func (m *Model) Empty() bool {
	return m == nil || len(m.Vertices) == 0
}

// TriangleCount returns the number of complete index triples.
func (m *Model) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Triangle returns the 0-based vertex indices of triangle i.
func (m *Model) Triangle(i int) (a, b, c int) {
	base := i * 3
	return m.Indices[base] - 1, m.Indices[base+1] - 1, m.Indices[base+2] - 1
}

// Bounds returns the axis-aligned box enclosing every vertex. ok is false
// for an empty model.
func (m *Model) Bounds() (lo, hi math.Vec3, ok bool) {
	if m.Empty() {
		return lo, hi, false
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo.X, hi.X = min(lo.X, v.X), max(hi.X, v.X)
		lo.Y, hi.Y = min(lo.Y, v.Y), max(hi.Y, v.Y)
		lo.Z, hi.Z = min(lo.Z, v.Z), max(hi.Z, v.Z)
	}
	return lo, hi, true
}

// LoadModel opens path and parses it as a model file.
// A file that cannot be opened yields an error wrapping ErrOpen.
func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	m, err := ParseModel(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ParseModel reads whitespace-separated records from r.
//
// A "v" token is followed by three floats (a vertex), an "f" token by three
// 1-based vertex indices (a triangle). Any other token is skipped on its
// own, without consuming what follows it. Face tokens of the form "a/b/c"
// contribute only their leading vertex index.
func ParseModel(r io.Reader) (*Model, error) {
	tz := newTokenizer(r)
	m := &Model{}

	for {
		tok, ok := tz.next()
		if !ok {
			break
		}

		switch tok {
		case "v":
			var xyz [3]float32
			for i := range xyz {
				f, err := tz.float()
				if err != nil {
					return nil, err
				}
				xyz[i] = f
			}
			m.Vertices = append(m.Vertices, math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})

		case "f":
			for i := 0; i < 3; i++ {
				idx, err := tz.index()
				if err != nil {
					return nil, err
				}
				m.Indices = append(m.Indices, idx)
			}
		}
	}

	if err := tz.err(); err != nil {
		return nil, err
	}

	// Faces may reference vertices declared later, so bounds are checked
	// once the whole file is read.
	for i, idx := range m.Indices {
		if idx < 1 || idx > len(m.Vertices) {
			return nil, &ParseError{
				Line:  tz.indexLines[i],
				Token: strconv.Itoa(idx),
				Err:   fmt.Errorf("%w: %d vertices", ErrIndexOutOfRange, len(m.Vertices)),
			}
		}
	}

	return m, nil
}

// tokenizer yields whitespace-separated tokens across line boundaries
// while tracking the current line for error reporting.
type tokenizer struct {
	sc      *bufio.Scanner
	fields  []string
	line    int
	scanErr error

	// line of every face index read, parallel to Model.Indices
	indexLines []int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			t.scanErr = t.sc.Err()
			return "", false
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, true
}

func (t *tokenizer) err() error {
	if t.scanErr != nil {
		return fmt.Errorf("reading model: %w", t.scanErr)
	}
	return nil
}

func (t *tokenizer) field() (string, error) {
	tok, ok := t.next()
	if !ok {
		if err := t.err(); err != nil {
			return "", err
		}
		return "", &ParseError{Line: t.line, Err: ErrTruncatedRecord}
	}
	return tok, nil
}

func (t *tokenizer) float() (float32, error) {
	tok, err := t.field()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, &ParseError{Line: t.line, Token: tok, Err: ErrBadNumber}
	}
	return float32(f), nil
}

func (t *tokenizer) index() (int, error) {
	tok, err := t.field()
	if err != nil {
		return 0, err
	}
	head, _, _ := strings.Cut(tok, "/")
	idx, err := strconv.Atoi(head)
	if err != nil {
		return 0, &ParseError{Line: t.line, Token: tok, Err: ErrBadNumber}
	}
	t.indexLines = append(t.indexLines, t.line)
	return idx, nil
}
