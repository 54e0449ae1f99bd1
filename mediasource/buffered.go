package mediasource

import (
	"context"
	"sync"

	"github.com/Laisky/errors/v2"
)

// ErrStreamClosed is returned by BufferedStream after Close.
var ErrStreamClosed = errors.New("mediasource: stream closed")

// EventKind says which ProducerStream call produced an Event.
type EventKind int

const (
	EventFrame EventKind = iota
	EventFormatChanged
	EventMetadata
)

// Event is one call recorded by BufferedStream. Only the fields for Kind
// are set.
type Event struct {
	Kind             EventKind
	Frame            Frame
	CodecPrivateData []byte
	TrackID          uint64
	Name             string
	Value            string
	Persistent       bool
}

// BufferedStream is a ProducerStream that queues calls on a bounded channel
// for a consumer to read from Events. Senders block while the buffer is full.
type BufferedStream struct {
	events  chan Event
	closing chan struct{}

	mu     sync.RWMutex
	closed bool
	once   sync.Once
}

var _ ProducerStream = (*BufferedStream)(nil)

func NewBufferedStream(capacity int) *BufferedStream {
	if capacity < 0 {
		capacity = 0
	}
	return &BufferedStream{
		events:  make(chan Event, capacity),
		closing: make(chan struct{}),
	}
}

// Events is closed by Close once every accepted event is queued. Ranging over
// it drains what is left.
func (b *BufferedStream) Events() <-chan Event {
	return b.events
}

func (b *BufferedStream) send(ctx context.Context, ev Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrStreamClosed
	}
	select {
	case b.events <- ev:
		return nil
	case <-b.closing:
		return ErrStreamClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *BufferedStream) PutFrame(ctx context.Context, frame Frame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	frame.Data = append([]byte(nil), frame.Data...)
	return b.send(ctx, Event{Kind: EventFrame, Frame: frame, TrackID: frame.TrackID})
}

func (b *BufferedStream) PutFragmentMetadata(ctx context.Context, name, value string, persistent bool) error {
	if name == "" {
		return errors.New("fragment metadata name is required")
	}
	return b.send(ctx, Event{Kind: EventMetadata, Name: name, Value: value, Persistent: persistent})
}

func (b *BufferedStream) StreamFormatChanged(ctx context.Context, codecPrivateData []byte, trackID uint64) error {
	return b.send(ctx, Event{
		Kind:             EventFormatChanged,
		CodecPrivateData: append([]byte(nil), codecPrivateData...),
		TrackID:          trackID,
	})
}

// Close stops accepting events, releases blocked senders and closes Events.
// Events already queued stay readable. Close is idempotent.
func (b *BufferedStream) Close() error {
	b.once.Do(func() {
		close(b.closing)
		b.mu.Lock()
		b.closed = true
		close(b.events)
		b.mu.Unlock()
	})
	return nil
}
