// Package toast defines toast notification entities and their stack
// renderer. Lifecycle (timers, dismissal, removal) is driven by the overlay
// manager; this package owns identity, levels, and presentation.
package toast

import (
	"strings"
	"time"
)

// DefaultDuration is the auto-dismiss delay applied when a caller passes no
// duration. A zero or negative duration keeps the toast until it is
// dismissed manually.
const DefaultDuration = 4 * time.Second

// Level indicates the severity of a toast
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "success":
		return LevelSuccess
	case "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Phase tracks a toast through its teardown sequence. A toast is Active
// until a dismissal trigger wins, Closing while its exit animation plays,
// and absent from the stack afterwards.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseClosing
)

// Toast represents a single notification
type Toast struct {
	ID       ID
	Level    Level
	Message  string
	Duration time.Duration
	Phase    Phase
}

// New creates an active toast with a fresh identifier.
func New(message string, level Level, duration time.Duration) *Toast {
	return &Toast{
		ID:       NewID(),
		Level:    level,
		Message:  message,
		Duration: duration,
		Phase:    PhaseActive,
	}
}
