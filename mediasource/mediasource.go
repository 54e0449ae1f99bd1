// Package mediasource forwards frames, codec private data and fragment
// metadata from a media source into a Kinesis Video producer stream.
package mediasource

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
)

// DefaultTrackID is used when codec private data arrives without a track.
const DefaultTrackID uint64 = 1

// FrameFlags mark properties of a frame.
type FrameFlags uint32

const (
	FrameFlagNone          FrameFlags = 0
	FrameFlagKeyFrame      FrameFlags = 1 << 0
	FrameFlagDiscardable   FrameFlags = 1 << 1
	FrameFlagInvisible     FrameFlags = 1 << 2
	FrameFlagEndOfFragment FrameFlags = 1 << 3
)

// Frame is one encoded media frame. Timestamps are relative to the start of
// the stream.
type Frame struct {
	Index          uint32
	Flags          FrameFlags
	DecodingTS     time.Duration
	PresentationTS time.Duration
	Duration       time.Duration
	TrackID        uint64
	Data           []byte
}

func (f Frame) IsKeyFrame() bool {
	return f.Flags&FrameFlagKeyFrame != 0
}

// Validate rejects frames a producer would refuse.
func (f Frame) Validate() error {
	if len(f.Data) == 0 {
		return errors.Errorf("frame %d has no data", f.Index)
	}
	if f.DecodingTS < 0 || f.PresentationTS < 0 {
		return errors.Errorf("frame %d has a negative timestamp", f.Index)
	}
	if f.Duration < 0 {
		return errors.Errorf("frame %d has a negative duration", f.Index)
	}
	return nil
}

// ProducerStream is the receiving end of a Kinesis Video stream.
type ProducerStream interface {
	PutFrame(ctx context.Context, frame Frame) error
	PutFragmentMetadata(ctx context.Context, name, value string, persistent bool) error
	StreamFormatChanged(ctx context.Context, codecPrivateData []byte, trackID uint64) error
}

// Logger is the subset of *zap.Logger used here.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
}

// Sink receives callbacks from a media source and hands them to a producer
// stream unchanged.
type Sink struct {
	name   string
	stream ProducerStream
	logger Logger
}

// NewSink wraps stream. name identifies the stream in errors and logs.
func NewSink(name string, stream ProducerStream, logger Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{name: name, stream: stream, logger: logger}
}

// OnFrame forwards a frame.
func (s *Sink) OnFrame(ctx context.Context, frame Frame) error {
	if err := s.stream.PutFrame(ctx, frame); err != nil {
		return errors.Wrapf(err, "stream %s: put frame %d", s.name, frame.Index)
	}
	return nil
}

// OnCodecPrivateData reports a format change on DefaultTrackID.
func (s *Sink) OnCodecPrivateData(ctx context.Context, codecPrivateData []byte) error {
	return s.OnTrackCodecPrivateData(ctx, codecPrivateData, DefaultTrackID)
}

// OnTrackCodecPrivateData reports a format change on trackID.
func (s *Sink) OnTrackCodecPrivateData(ctx context.Context, codecPrivateData []byte, trackID uint64) error {
	s.logger.Debug("stream format changed",
		zap.String("stream", s.name),
		zap.Uint64("track", trackID),
		zap.Int("bytes", len(codecPrivateData)))
	if err := s.stream.StreamFormatChanged(ctx, codecPrivateData, trackID); err != nil {
		return errors.Wrapf(err, "stream %s: format change on track %d", s.name, trackID)
	}
	return nil
}

// OnFragmentMetadata forwards a metadata tag. Persistent tags are repeated
// on every following fragment.
func (s *Sink) OnFragmentMetadata(ctx context.Context, name, value string, persistent bool) error {
	if err := s.stream.PutFragmentMetadata(ctx, name, value, persistent); err != nil {
		return errors.Wrapf(err, "stream %s: put metadata %q", s.name, name)
	}
	return nil
}

// ProducerStream returns the wrapped stream.
func (s *Sink) ProducerStream() ProducerStream {
	return s.stream
}
