// Package notify keeps the app-wide queue of transient toast messages.
// One Store is constructed at startup and handed to the views; nothing in
// this package holds package-level state.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a toast for styling. The store never inspects it.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// DefaultDuration is applied when Push is given a non-positive duration
const DefaultDuration = 4 * time.Second

// Toast is one ephemeral message. Immutable after creation; its only
// lifecycle is presence in the queue.
type Toast struct {
	ID        string
	Text      string
	Kind      Kind
	Duration  time.Duration
	CreatedAt time.Time
}

// Store is an ordered queue of toasts with per-toast expiry timers.
// Insertion order is display order; messages are never reordered or
// coalesced. Safe for use from timer goroutines and the event loop.
type Store struct {
	mu       sync.RWMutex
	toasts   []Toast
	timers   map[string]*time.Timer
	onChange func()
}

func NewStore() *Store {
	return &Store{
		timers: make(map[string]*time.Timer),
	}
}

// SetOnChange registers a callback fired after every mutation, including
// timer-driven expiry. The TUI wires this to tea.Program.Send so expired
// toasts repaint without user input. The callback runs outside the lock.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Push appends a toast and arms its expiry timer, returning the new id.
// Ids are unique for the life of the process; the queue never holds two
// entries with the same id.
func (s *Store) Push(text string, kind Kind, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}

	toast := Toast{
		ID:        uuid.NewString(),
		Text:      text,
		Kind:      kind,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	s.timers[toast.ID] = time.AfterFunc(duration, func() {
		s.expire(toast.ID)
	})
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return toast.ID
}

// Success pushes a success toast with the default duration
func (s *Store) Success(text string) string {
	return s.Push(text, KindSuccess, DefaultDuration)
}

// Error pushes an error toast with the default duration
func (s *Store) Error(text string) string {
	return s.Push(text, KindError, DefaultDuration)
}

// Warning pushes a warning toast with the default duration
func (s *Store) Warning(text string) string {
	return s.Push(text, KindWarning, DefaultDuration)
}

// Dismiss removes a toast immediately and cancels its pending timer.
// Dismissing an id that is not present is a no-op.
func (s *Store) Dismiss(id string) {
	s.remove(id, true)
}

// expire is the timer path: identical to Dismiss except the timer has
// already fired, so there is nothing to stop. Firing after a manual
// dismissal finds nothing and changes nothing.
func (s *Store) expire(id string) {
	s.remove(id, false)
}

func (s *Store) remove(id string, stopTimer bool) {
	s.mu.Lock()

	index := -1
	for i, toast := range s.toasts {
		if toast.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return
	}

	s.toasts = append(s.toasts[:index], s.toasts[index+1:]...)

	if timer, ok := s.timers[id]; ok {
		if stopTimer {
			timer.Stop()
		}
		delete(s.timers, id)
	}

	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Toasts returns a snapshot of the queue in insertion order
func (s *Store) Toasts() []Toast {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Len reports the number of live toasts
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.toasts)
}

// Shutdown cancels every pending timer and empties the queue
func (s *Store) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}
