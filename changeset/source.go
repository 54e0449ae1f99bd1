package changeset

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/gurre/s3streamer"
)

// maxLineSize bounds a single change line.
const maxLineSize = 4 * 1024 * 1024

// Source yields the lines of a change file in order.
type Source interface {
	// Name identifies the source in checkpoints and logs.
	Name() string
	// Lines calls fn for every line starting at byte offset, which must be
	// the start of a line. start is the line's byte offset in the file.
	Lines(ctx context.Context, offset int64, fn func(line []byte, start int64) error) error
}

// FileSource reads a local file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Name() string { return "file://" + f.path }

func (f *FileSource) Lines(ctx context.Context, offset int64, fn func(line []byte, start int64) error) error {
	file, err := os.Open(f.path)
	if err != nil {
		return errors.Wrapf(err, "open %s", f.path)
	}
	defer func() { _ = file.Close() }()

	if offset > 0 {
		if _, err := file.Seek(offset, io.SeekStart); err != nil {
			return errors.Wrapf(err, "seek %s to %d", f.path, offset)
		}
	}

	r := bufio.NewReaderSize(file, 64*1024)
	pos := offset
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, err := r.ReadBytes('\n')
		if len(raw) > maxLineSize {
			return errors.Errorf("%s: line at offset %d exceeds %d bytes", f.path, pos, maxLineSize)
		}
		if len(raw) > 0 {
			line := bytes.TrimRight(raw, "\r\n")
			if ferr := fn(line, pos); ferr != nil {
				return ferr
			}
			pos += int64(len(raw))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", f.path)
		}
	}
}

// S3Source streams an object line by line through s3streamer.
type S3Source struct {
	streamer s3streamer.Streamer
	bucket   string
	key      string
}

func NewS3Source(streamer s3streamer.Streamer, bucket, key string) *S3Source {
	return &S3Source{streamer: streamer, bucket: bucket, key: key}
}

func (s *S3Source) Name() string { return "s3://" + s.bucket + "/" + s.key }

// Lines streams from offset. s3streamer reports offsets relative to where
// the stream began and counts one byte per line break, so start is exact for
// uncompressed objects with LF line endings. The applier checks the line it
// resumes on before trusting an offset.
func (s *S3Source) Lines(ctx context.Context, offset int64, fn func(line []byte, start int64) error) error {
	err := s.streamer.Stream(ctx, s.bucket, s.key, offset, func(line []byte, rel int64) error {
		return fn(line, offset+rel)
	})
	if err != nil {
		return errors.Wrapf(err, "stream %s", s.Name())
	}
	return nil
}

// OpenSource resolves uri to a Source. s3:// URIs need a streamer; anything
// else is treated as a local path, with or without a file:// prefix.
func OpenSource(uri string, streamer s3streamer.Streamer) (Source, error) {
	if strings.HasPrefix(uri, "s3://") {
		u, err := url.Parse(uri)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid S3 URI %q", uri)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, errors.Errorf("S3 URI must name a bucket and key: %q", uri)
		}
		if streamer == nil {
			return nil, errors.New("reading from S3 requires a streamer")
		}
		return NewS3Source(streamer, u.Host, key), nil
	}

	path := strings.TrimPrefix(uri, "file://")
	if path == "" {
		return nil, errors.New("change file path is required")
	}
	return NewFileSource(path), nil
}
