package mock

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
)

// Stream satisfies s3streamer.Streamer without range reads. Like the real
// streamer it reports each line's start relative to offset and rejects an
// offset at or past the end of the object.
func (m *S3Client) Stream(ctx context.Context, bucket, key string, offset int64, fn func([]byte, int64) error) error {
	m.mu.Lock()
	m.streams = append(m.streams, offset)
	m.mu.Unlock()

	content, ok := m.File(bucket, key)
	if !ok {
		return fmt.Errorf("mock S3: key not found: %s/%s", bucket, key)
	}
	if offset < 0 || offset >= int64(len(content)) {
		return fmt.Errorf("mock S3: offset %d beyond end of %s/%s", offset, bucket, key)
	}

	scanner := bufio.NewScanner(bytes.NewReader(content[offset:]))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var pos int64
	for scanner.Scan() {
		line := scanner.Bytes()
		if err := fn(line, pos); err != nil {
			return err
		}
		pos += int64(len(line)) + 1

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return scanner.Err()
}

// Streams returns the offsets Stream was opened at, in call order.
func (m *S3Client) Streams() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int64(nil), m.streams...)
}
