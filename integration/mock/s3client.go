// Package mock provides in-memory fakes of the AWS services this module
// talks to: S3, DynamoDB, IAM and a WAF Regional JSON endpoint.
package mock

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Client is an in-memory aws.S3Client keyed by "bucket/key".
type S3Client struct {
	mu       sync.RWMutex
	files    map[string][]byte
	metadata map[string]map[string]string
	streams  []int64

	// FailGets makes the next GetObject calls fail with this error.
	FailGets []error
}

func NewS3Client() *S3Client {
	return &S3Client{
		files:    make(map[string][]byte),
		metadata: make(map[string]map[string]string),
	}
}

// AddFile stores content under bucket/key.
func (m *S3Client) AddFile(bucket, key string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[bucket+"/"+key] = append([]byte(nil), content...)
	m.metadata[bucket+"/"+key] = map[string]string{"Content-Type": "application/json"}
}

// File returns the content stored under bucket/key.
func (m *S3Client) File(bucket, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[bucket+"/"+key]
	return data, ok
}

// Keys lists all stored "bucket/key" names, sorted.
func (m *S3Client) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.files))
	for k := range m.files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func etag(content []byte) *string {
	return aws.String(fmt.Sprintf("\"%x\"", len(content)))
}

func noSuchKey(key string) error {
	return &types.NoSuchKey{
		Message: aws.String(fmt.Sprintf("The specified key does not exist: %s", key)),
	}
}

// parseRange handles "bytes=start-" and "bytes=start-end".
func parseRange(header string, size int64) (int64, int64, bool) {
	rng, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, false
	}
	from, to, _ := strings.Cut(rng, "-")
	start, err := strconv.ParseInt(from, 10, 64)
	if err != nil || start > size {
		return 0, 0, false
	}
	end := size - 1
	if to != "" {
		if e, err := strconv.ParseInt(to, 10, 64); err == nil && e < end {
			end = e
		}
	}
	return start, end, true
}

func (m *S3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.mu.Lock()
	if len(m.FailGets) > 0 {
		err := m.FailGets[0]
		m.FailGets = m.FailGets[1:]
		m.mu.Unlock()
		return nil, err
	}
	m.mu.Unlock()

	bucketKey := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	m.mu.RLock()
	content, ok := m.files[bucketKey]
	metadata := m.metadata[bucketKey]
	m.mu.RUnlock()
	if !ok {
		return nil, noSuchKey(aws.ToString(params.Key))
	}

	size := int64(len(content))
	body := content
	if params.Range != nil {
		if start, end, ok := parseRange(*params.Range, size); ok {
			body = content[start : end+1]
		}
	}
	length := int64(len(body))
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(body)),
		Metadata:      metadata,
		ETag:          etag(content),
		ContentLength: &length,
	}, nil
}

func (m *S3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	bucketKey := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[bucketKey] = data
	if params.Metadata != nil {
		m.metadata[bucketKey] = params.Metadata
	} else {
		m.metadata[bucketKey] = make(map[string]string)
	}
	return &s3.PutObjectOutput{ETag: etag(data)}, nil
}

func (m *S3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	bucketKey := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[bucketKey]
	if !ok {
		return nil, &types.NotFound{Message: aws.String("Not Found")}
	}
	length := int64(len(content))
	return &s3.HeadObjectOutput{
		ETag:          etag(content),
		Metadata:      m.metadata[bucketKey],
		ContentLength: &length,
	}, nil
}

func (m *S3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	bucketKey := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, bucketKey)
	delete(m.metadata, bucketKey)
	return &s3.DeleteObjectOutput{}, nil
}

// CreateMultipartUpload is a stub implementation for the s3streamer.S3Client interface
func (m *S3Client) CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, fmt.Errorf("CreateMultipartUpload not implemented in mock")
}

// UploadPart is a stub implementation for the s3streamer.S3Client interface
func (m *S3Client) UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, fmt.Errorf("UploadPart not implemented in mock")
}

// CompleteMultipartUpload is a stub implementation for the s3streamer.S3Client interface
func (m *S3Client) CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, fmt.Errorf("CompleteMultipartUpload not implemented in mock")
}

// AbortMultipartUpload is a stub implementation for the s3streamer.S3Client interface
func (m *S3Client) AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, fmt.Errorf("AbortMultipartUpload not implemented in mock")
}
