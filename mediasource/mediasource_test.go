package mediasource

import (
	"context"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

type call struct {
	method     string
	frame      Frame
	data       []byte
	trackID    uint64
	name       string
	value      string
	persistent bool
}

type recordingStream struct {
	calls []call
	err   error
}

func (r *recordingStream) PutFrame(ctx context.Context, frame Frame) error {
	r.calls = append(r.calls, call{method: "PutFrame", frame: frame})
	return r.err
}

func (r *recordingStream) PutFragmentMetadata(ctx context.Context, name, value string, persistent bool) error {
	r.calls = append(r.calls, call{method: "PutFragmentMetadata", name: name, value: value, persistent: persistent})
	return r.err
}

func (r *recordingStream) StreamFormatChanged(ctx context.Context, codecPrivateData []byte, trackID uint64) error {
	r.calls = append(r.calls, call{method: "StreamFormatChanged", data: codecPrivateData, trackID: trackID})
	return r.err
}

func keyFrame(i uint32) Frame {
	ts := time.Duration(i) * 40 * time.Millisecond
	return Frame{
		Index:          i,
		Flags:          FrameFlagKeyFrame,
		DecodingTS:     ts,
		PresentationTS: ts,
		Duration:       40 * time.Millisecond,
		TrackID:        DefaultTrackID,
		Data:           []byte{0x00, 0x00, 0x01, byte(i)},
	}
}

func TestSinkDelegates(t *testing.T) {
	stream := &recordingStream{}
	sink := NewSink("camera-1", stream, nil)
	ctx := context.Background()

	require.NoError(t, sink.OnCodecPrivateData(ctx, []byte{0x01, 0x64}))
	require.NoError(t, sink.OnTrackCodecPrivateData(ctx, []byte{0x11}, 2))
	require.NoError(t, sink.OnFrame(ctx, keyFrame(0)))
	require.NoError(t, sink.OnFragmentMetadata(ctx, "location", "lobby", true))

	require.Equal(t, []call{
		{method: "StreamFormatChanged", data: []byte{0x01, 0x64}, trackID: DefaultTrackID},
		{method: "StreamFormatChanged", data: []byte{0x11}, trackID: 2},
		{method: "PutFrame", frame: keyFrame(0)},
		{method: "PutFragmentMetadata", name: "location", value: "lobby", persistent: true},
	}, stream.calls)
	require.Same(t, stream, sink.ProducerStream())
}

func TestSinkWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	sink := NewSink("camera-1", &recordingStream{err: boom}, nil)
	ctx := context.Background()

	err := sink.OnFrame(ctx, keyFrame(7))
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "camera-1")
	require.Contains(t, err.Error(), "frame 7")

	require.ErrorIs(t, sink.OnCodecPrivateData(ctx, nil), boom)
	require.ErrorIs(t, sink.OnFragmentMetadata(ctx, "k", "v", false), boom)
}

func TestFrameValidate(t *testing.T) {
	require.NoError(t, keyFrame(1).Validate())
	require.True(t, keyFrame(1).IsKeyFrame())
	require.False(t, Frame{Flags: FrameFlagDiscardable}.IsKeyFrame())

	empty := keyFrame(1)
	empty.Data = nil
	require.Error(t, empty.Validate())

	negative := keyFrame(1)
	negative.PresentationTS = -time.Millisecond
	require.Error(t, negative.Validate())

	badDuration := keyFrame(1)
	badDuration.Duration = -time.Millisecond
	require.Error(t, badDuration.Validate())
}

func TestBufferedStreamQueuesInOrder(t *testing.T) {
	stream := NewBufferedStream(8)
	sink := NewSink("camera-1", stream, nil)
	ctx := context.Background()

	codec := []byte{0x01, 0x64}
	require.NoError(t, sink.OnCodecPrivateData(ctx, codec))
	codec[0] = 0xff
	require.NoError(t, sink.OnFrame(ctx, keyFrame(0)))
	require.NoError(t, sink.OnFragmentMetadata(ctx, "k", "v", false))
	require.NoError(t, stream.Close())

	var events []Event
	for ev := range stream.Events() {
		events = append(events, ev)
	}
	require.Len(t, events, 3)
	require.Equal(t, EventFormatChanged, events[0].Kind)
	require.Equal(t, []byte{0x01, 0x64}, events[0].CodecPrivateData)
	require.Equal(t, EventFrame, events[1].Kind)
	require.Equal(t, uint32(0), events[1].Frame.Index)
	require.Equal(t, EventMetadata, events[2].Kind)
	require.Equal(t, "k", events[2].Name)
}

func TestBufferedStreamRejectsAfterClose(t *testing.T) {
	stream := NewBufferedStream(1)
	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())

	require.ErrorIs(t, stream.PutFrame(context.Background(), keyFrame(0)), ErrStreamClosed)
	require.ErrorIs(t, stream.PutFragmentMetadata(context.Background(), "k", "v", false), ErrStreamClosed)
	require.ErrorIs(t, stream.StreamFormatChanged(context.Background(), nil, 1), ErrStreamClosed)
}

func TestBufferedStreamValidates(t *testing.T) {
	stream := NewBufferedStream(1)
	defer stream.Close()

	require.Error(t, stream.PutFrame(context.Background(), Frame{Index: 1}))
	require.Error(t, stream.PutFragmentMetadata(context.Background(), "", "v", false))
}

func TestBufferedStreamBlocksWhenFull(t *testing.T) {
	stream := NewBufferedStream(1)
	require.NoError(t, stream.PutFrame(context.Background(), keyFrame(0)))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, stream.PutFrame(ctx, keyFrame(1)), context.DeadlineExceeded)

	done := make(chan error, 1)
	go func() {
		done <- stream.PutFrame(context.Background(), keyFrame(2))
	}()
	select {
	case err := <-done:
		t.Fatalf("send returned early: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, stream.Close())
	require.ErrorIs(t, <-done, ErrStreamClosed)

	var n int
	for range stream.Events() {
		n++
	}
	require.Equal(t, 1, n)
}
