package app

import "sync"

// Mailbox is an unbounded, ordered, single-direction channel.
//
// Send never waits for the receiver: values are queued by a pump goroutine
// and delivered on Out in the order they were sent. After Close, queued
// values are still delivered, then Out is closed.
type Mailbox[T any] struct {
	in  chan T
	out chan T

	mu     sync.Mutex
	closed bool
}

// NewMailbox creates a mailbox and starts its pump goroutine.
func NewMailbox[T any]() *Mailbox[T] {
	m := &Mailbox[T]{
		in:  make(chan T),
		out: make(chan T),
	}
	go m.pump()
	return m
}

// Send queues v. It reports false, dropping v, if the mailbox is closed.
func (m *Mailbox[T]) Send(v T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.in <- v
	return true
}

// Out returns the receiving end.
func (m *Mailbox[T]) Out() <-chan T {
	return m.out
}

// Close stops accepting values. Safe to call more than once.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.in)
}

func (m *Mailbox[T]) pump() {
	defer close(m.out)

	var queue []T
	in := m.in
	for in != nil || len(queue) > 0 {
		var (
			out  chan T
			head T
		)
		if len(queue) > 0 {
			out = m.out
			head = queue[0]
		}

		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, v)
		case out <- head:
			var zero T
			queue[0] = zero
			queue = queue[1:]
		}
	}
}
