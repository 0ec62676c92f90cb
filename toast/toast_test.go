package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veiltui/veil/styles"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Level
	}{
		{"success", "success", LevelSuccess},
		{"warning", "warning", LevelWarning},
		{"error", "error", LevelError},
		{"info", "info", LevelInfo},
		{"mixed case", "SUCCESS", LevelSuccess},
		{"unknown defaults to info", "fatal", LevelInfo},
		{"empty defaults to info", "", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	tst := New("Saved", LevelSuccess, 2*time.Second)

	assert.NotEmpty(t, tst.ID)
	assert.Equal(t, LevelSuccess, tst.Level)
	assert.Equal(t, "Saved", tst.Message)
	assert.Equal(t, 2*time.Second, tst.Duration)
	assert.Equal(t, PhaseActive, tst.Phase)
}

func TestNewID_PairwiseDistinct(t *testing.T) {
	seen := make(map[ID]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q on iteration %d", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestRenderer_Render_Empty(t *testing.T) {
	r := NewRenderer(styles.New())

	assert.Equal(t, "", r.Render(nil, 80))
	assert.Equal(t, "", r.Render([]*Toast{}, 80))
}

func TestRenderer_Render_SingleToast(t *testing.T) {
	r := NewRenderer(styles.New())

	result := r.Render([]*Toast{New("Test message", LevelInfo, 0)}, 80)

	assert.NotEmpty(t, result, "Should render toast")
	assert.Contains(t, result, "Test message", "Should contain toast message")
}

func TestRenderer_Render_MultipleToasts(t *testing.T) {
	r := NewRenderer(styles.New())

	toasts := []*Toast{
		New("First toast", LevelInfo, 0),
		New("Second toast", LevelSuccess, 0),
		New("Third toast", LevelError, 0),
	}

	result := r.Render(toasts, 80)

	assert.Contains(t, result, "First toast")
	assert.Contains(t, result, "Second toast")
	assert.Contains(t, result, "Third toast")

	lines := strings.Split(result, "\n")
	assert.Greater(t, len(lines), 1, "Multiple toasts should create multiple lines")

	// Creation order preserved: first toast above the later ones.
	assert.Less(t,
		strings.Index(result, "First toast"),
		strings.Index(result, "Third toast"),
	)
}

func TestRenderer_Render_DifferentLevels(t *testing.T) {
	r := NewRenderer(styles.New())

	tests := []struct {
		name  string
		level Level
	}{
		{"Info", LevelInfo},
		{"Success", LevelSuccess},
		{"Warning", LevelWarning},
		{"Error", LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Render([]*Toast{New("Test "+tt.name, tt.level, 0)}, 80)

			assert.NotEmpty(t, result)
			assert.Contains(t, result, "Test "+tt.name)
		})
	}
}

func TestRenderer_IconPrepended(t *testing.T) {
	r := NewRenderer(styles.New())

	result := r.Render([]*Toast{New("Saved", LevelSuccess, 0)}, 80)

	assert.Contains(t, result, "✓ Saved")
}

func TestRenderer_ExistingGlyphKept(t *testing.T) {
	r := NewRenderer(styles.New())

	result := r.Render([]*Toast{New("✓ Saved", LevelSuccess, 0)}, 80)

	assert.Contains(t, result, "✓ Saved")
	assert.NotContains(t, result, "✓ ✓")
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.Equal(t, 0, s.Len())

	a := New("a", LevelInfo, 0)
	b := New("b", LevelInfo, 0)
	s.Push(a)
	s.Push(b)

	assert.Equal(t, 2, s.Len())
	assert.Same(t, a, s.Get(a.ID))
	assert.Same(t, b, s.Get(b.ID))
	assert.Equal(t, []*Toast{a, b}, s.All())
}

func TestStack_GetMissing(t *testing.T) {
	s := NewStack()
	s.Push(New("a", LevelInfo, 0))

	assert.Nil(t, s.Get(ID("1234-00000-9")))
}

func TestStack_Remove(t *testing.T) {
	s := NewStack()
	a := New("a", LevelInfo, 0)
	s.Push(a)

	assert.True(t, s.Remove(a.ID))
	assert.Equal(t, 0, s.Len())

	// Second removal is a no-op, not an error.
	assert.False(t, s.Remove(a.ID))
}
