package app

import "github.com/bft-labs/pomo/internal/domain"

// AdvanceChannel carries requests from the presentation layer to the
// engine's driver loop. Requests are queued without blocking the sender.
type AdvanceChannel struct {
	box *Mailbox[domain.Advance]
}

// NewAdvanceChannel creates an open advance channel.
func NewAdvanceChannel() *AdvanceChannel {
	return &AdvanceChannel{box: NewMailbox[domain.Advance]()}
}

// Proceed asks the engine to run the next interval. It reports false once
// the channel is closed.
func (c *AdvanceChannel) Proceed() bool { return c.box.Send(domain.Proceed) }

// Cancel sends the reserved cancel request.
func (c *AdvanceChannel) Cancel() bool { return c.box.Send(domain.Cancel) }

// Requests returns the receiving end consumed by Engine.Run.
func (c *AdvanceChannel) Requests() <-chan domain.Advance { return c.box.Out() }

// Close disconnects the presentation side. The driver loop exits once every
// queued request has been handled.
func (c *AdvanceChannel) Close() { c.box.Close() }
