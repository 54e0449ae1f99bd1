package changeset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Laisky/errors/v2"

	"github.com/gurre/waf-regional/store"
)

// Checkpoint records how far a change file has been applied.
type Checkpoint struct {
	Source    string    `json:"source"`
	Lines     int64     `json:"lines"`     // Lines consumed, including blanks and skipped corrupt lines
	Offset    int64     `json:"offset"`    // Byte offset of the last applied line
	LineHash  string    `json:"lineHash"`  // SHA-256 of the last applied line
	LastToken string    `json:"lastToken"` // Change token of the last applied change
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func lineHash(line []byte) string {
	sum := sha256.Sum256(line)
	return hex.EncodeToString(sum[:])
}

// CheckpointKey is the store key for a run. An empty runID derives one from
// the source name, so re-running the same file resumes by default.
func CheckpointKey(runID, source string) string {
	if runID == "" {
		sum := sha256.Sum256([]byte(source))
		runID = hex.EncodeToString(sum[:8])
	}
	return "changesets/" + runID + ".json"
}

func loadCheckpoint(ctx context.Context, st store.Store, key string) (Checkpoint, error) {
	var cp Checkpoint
	err := store.GetJSON(ctx, st, key, &cp)
	if errors.Is(err, store.ErrNotFound) {
		return Checkpoint{}, nil
	}
	if err != nil {
		return Checkpoint{}, errors.Wrap(err, "load checkpoint")
	}
	return cp, nil
}

func saveCheckpoint(ctx context.Context, st store.Store, key string, cp Checkpoint) error {
	if err := store.PutJSON(ctx, st, key, cp); err != nil {
		return errors.Wrap(err, "save checkpoint")
	}
	return nil
}
