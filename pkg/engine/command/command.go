// Package command receives operator commands from the peripheral bus.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
)

// Command bytes
const (
	CmdDisplay byte = 0x00
)

// FrameSize is the length of one bus frame: command byte and argument
const FrameSize = 2

// Ack is the protocol-level acknowledgement returned for every frame
type Ack struct {
	Command    byte
	Recognized bool
}

// DisplaySwitch turns the panel output on and off
type DisplaySwitch interface {
	SetEnabled(enabled bool)
}

// Notifier is told about every command received
type Notifier interface {
	Notify(cmd byte)
}

// Receiver decodes bus frames. It only ever touches the display switch and
// the notifier.
type Receiver struct {
	display DisplaySwitch
	notify  Notifier

	received     atomic.Uint64
	unrecognized atomic.Uint64
}

// NewReceiver creates a receiver; notify may be nil
func NewReceiver(display DisplaySwitch, notify Notifier) *Receiver {
	return &Receiver{display: display, notify: notify}
}

// Receive handles one frame and acknowledges it
func (r *Receiver) Receive(frame []byte) Ack {
	if len(frame) == 0 {
		r.unrecognized.Add(1)
		log.Printf("[CMD] [WARN] empty frame")
		return Ack{}
	}

	cmd := frame[0]
	r.received.Add(1)
	if r.notify != nil {
		r.notify.Notify(cmd)
	}

	switch {
	case cmd == CmdDisplay && len(frame) >= FrameSize:
		on := frame[1] != 0
		r.display.SetEnabled(on)
		log.Printf("[CMD] [INFO] display enabled=%t", on)
		return Ack{Command: cmd, Recognized: true}
	default:
		r.unrecognized.Add(1)
		log.Printf("[CMD] [WARN] unrecognized command 0x%02x (%d bytes)", cmd, len(frame))
		return Ack{Command: cmd}
	}
}

// Stats returns the number of frames received and how many were unrecognized
func (r *Receiver) Stats() (received, unrecognized uint64) {
	return r.received.Load(), r.unrecognized.Load()
}

// Serve reads fixed-size frames from rd until it ends or ctx is cancelled.
// A clean end of stream returns nil.
func (r *Receiver) Serve(ctx context.Context, rd io.Reader) error {
	frame := make([]byte, FrameSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := io.ReadFull(rd, frame)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			r.Receive(frame[:1])
			return nil
		case err != nil:
			return fmt.Errorf("read command frame: %w", err)
		}

		r.Receive(frame)
	}
}
