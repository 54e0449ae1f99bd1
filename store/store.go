// Package store persists small JSON documents (WebACL snapshots and change
// checkpoints) in S3, DynamoDB, the local filesystem or memory. A store is
// chosen by URI: s3://bucket/prefix, dynamodb://table, file:///abs/dir or
// mem://.
package store

import (
	"context"
	"net/url"
	"strings"

	"github.com/Laisky/errors/v2"
	json "github.com/goccy/go-json"

	"github.com/gurre/waf-regional/aws"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Store is a flat key/value blob store. Keys are slash-separated paths such
// as "webacl/abc.json".
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Clients supplies the SDK clients for remote stores. Either may be nil when
// the corresponding scheme is not used.
type Clients struct {
	S3       aws.S3Client
	DynamoDB aws.DynamoDBClient
}

// NewFromURI opens the store named by uri.
func NewFromURI(uri string, clients Clients) (Store, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid store URI %q", uri)
	}
	switch u.Scheme {
	case "s3":
		if clients.S3 == nil {
			return nil, errors.New("s3 store requires an S3 client")
		}
		return NewS3Store(clients.S3, uri)
	case "dynamodb":
		if clients.DynamoDB == nil {
			return nil, errors.New("dynamodb store requires a DynamoDB client")
		}
		if u.Host == "" {
			return nil, errors.Errorf("dynamodb store URI must name a table: %q", uri)
		}
		return NewDynamoDBStore(clients.DynamoDB, u.Host), nil
	case "file":
		return NewFileStore(uri)
	case "mem":
		return NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("unsupported store scheme %q", u.Scheme)
	}
}

// GetJSON loads key and decodes it into v.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode %s", key)
	}
	return nil
}

// PutJSON encodes v and stores it under key.
func PutJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return s.Put(ctx, key, data)
}

func cleanKey(key string) (string, error) {
	key = strings.Trim(key, "/")
	if key == "" {
		return "", errors.New("store: empty key")
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return "", errors.Errorf("store: invalid key %q", key)
		}
	}
	return key, nil
}
