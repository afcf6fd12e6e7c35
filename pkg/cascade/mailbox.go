package cascade

import (
	"context"

	"go.uber.org/atomic"
)

// Mailbox is a single-slot handoff for selected ids. A Put overwrites any
// value the consumer has not taken yet, so only the latest selection is
// delivered. Intended for exactly one consumer; safe for concurrent use.
type Mailbox[T any] struct {
	slot  atomic.Pointer[T]
	ready chan struct{}
}

// NewMailbox returns an empty mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{ready: make(chan struct{}, 1)}
}

// Put stores v, replacing an unread value. It never blocks.
func (m *Mailbox[T]) Put(v T) {
	m.slot.Store(&v)
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// TryReceive takes the pending value, if any.
func (m *Mailbox[T]) TryReceive() (T, bool) {
	if p := m.slot.Swap(nil); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Receive blocks until a value is available or ctx is done.
func (m *Mailbox[T]) Receive(ctx context.Context) (T, error) {
	for {
		if v, ok := m.TryReceive(); ok {
			return v, nil
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-m.ready:
		}
	}
}
