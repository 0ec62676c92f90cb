package toast

// Stack is the shared toast container. It is created once by the overlay
// manager on first use and reused for the life of the program; toasts stack
// in creation order, newest last.
type Stack struct {
	toasts []*Toast
}

// NewStack creates an empty toast stack
func NewStack() *Stack {
	return &Stack{
		toasts: make([]*Toast, 0),
	}
}

// Push appends a toast to the stack
func (s *Stack) Push(t *Toast) {
	s.toasts = append(s.toasts, t)
}

// Get returns the toast with the given id, or nil if it is gone.
// Dismissal paths use this existence check to stay idempotent.
func (s *Stack) Get(id ID) *Toast {
	for _, t := range s.toasts {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Remove deletes the toast with the given id, reporting whether it existed.
func (s *Stack) Remove(id ID) bool {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of toasts in the stack
func (s *Stack) Len() int {
	return len(s.toasts)
}

// All returns the toasts in creation order
func (s *Stack) All() []*Toast {
	return s.toasts
}
