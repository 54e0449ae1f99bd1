package changeset

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/gurre/waf-regional/store"
	"github.com/gurre/waf-regional/wafregional"
)

type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

// Recorder counts the outcome of each line.
type Recorder interface {
	RecordApplied()
	RecordSkipped(n int64)
	RecordCorrupt()
}

type nopRecorder struct{}

func (nopRecorder) RecordApplied() {}
func (nopRecorder) RecordSkipped(int64) {}
func (nopRecorder) RecordCorrupt() {}

var errMisaligned = errors.New("checkpoint offset does not start at the last applied line")

type Options struct {
	// RunID names the checkpoint. Empty derives it from the source name.
	RunID string
	// DryRun decodes every line without calling the service or writing
	// checkpoints.
	DryRun bool
	// SkipCorrupt logs and counts corrupt lines instead of stopping.
	SkipCorrupt bool
	// Wait blocks after each change until its token is INSYNC.
	Wait         bool
	WaitInterval time.Duration

	Decoder  Decoder
	Recorder Recorder
	Logger   Logger
}

// Result summarizes one Apply run.
type Result struct {
	Source    string
	Lines     int64 // Lines read, including those skipped on resume
	Resumed   int64 // Lines skipped because an earlier run applied them
	Applied   int64
	Corrupt   int64
	LastToken string
	DryRun    bool
	Completed bool
}

type Applier struct {
	client *wafregional.Client
	store  store.Store
	opts   Options
}

func NewApplier(client *wafregional.Client, st store.Store, opts Options) *Applier {
	if opts.Decoder == nil {
		opts.Decoder = NewJSONDecoder()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Applier{client: client, store: st, opts: opts}
}

// Apply runs every change in src in order. Each change gets a fresh change
// token. The checkpoint is saved after every applied change, so a failed or
// cancelled run can be repeated and continues after the last change that
// succeeded.
func (a *Applier) Apply(ctx context.Context, src Source) (Result, error) {
	res := Result{Source: src.Name(), DryRun: a.opts.DryRun}
	key := CheckpointKey(a.opts.RunID, src.Name())

	var cp Checkpoint
	if !a.opts.DryRun {
		var err error
		if cp, err = loadCheckpoint(ctx, a.store, key); err != nil {
			return res, err
		}
		if cp.Source != "" && cp.Source != src.Name() {
			return res, errors.Errorf("checkpoint %s belongs to %s, not %s", key, cp.Source, src.Name())
		}
		if cp.Completed {
			a.opts.Logger.Info("change file already applied",
				zap.String("source", src.Name()),
				zap.Int64("lines", cp.Lines))
			res.Lines, res.Resumed, res.LastToken, res.Completed = cp.Lines, cp.Lines, cp.LastToken, true
			return res, nil
		}
		if cp.Lines > 0 {
			a.opts.Logger.Info("resuming change file",
				zap.String("source", src.Name()),
				zap.Int64("after_line", cp.Lines))
		}
		cp.Source = src.Name()
		res.LastToken = cp.LastToken
	}

	walk := func(offset, n int64, verify bool) error {
		seen := false
		err := src.Lines(ctx, offset, func(line []byte, start int64) error {
			n++
			res.Lines = n
			if verify && !seen {
				seen = true
				if lineHash(line) != cp.LineHash {
					return errMisaligned
				}
				if n > 1 {
					res.Resumed += n - 1
					a.opts.Recorder.RecordSkipped(n - 1)
				}
			}
			if n <= cp.Lines {
				res.Resumed++
				a.opts.Recorder.RecordSkipped(1)
				return nil
			}

			change, err := a.opts.Decoder.Decode(line)
			if errors.Is(err, errBlank) {
				return nil
			}
			if errors.Is(err, ErrCorrupt) {
				res.Corrupt++
				a.opts.Recorder.RecordCorrupt()
				if !a.opts.SkipCorrupt {
					return errors.Wrapf(err, "line %d", n)
				}
				a.opts.Logger.Warn("skipping corrupt line", zap.Int64("line", n), zap.Error(err))
				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "line %d", n)
			}

			if a.opts.DryRun {
				a.opts.Logger.Debug("dry run", zap.Int64("line", n), zap.String("action", change.Action))
				res.Applied++
				return nil
			}

			token, err := a.apply(ctx, change)
			if err != nil {
				return errors.Wrapf(err, "line %d: %s", n, change.Action)
			}
			res.Applied++
			res.LastToken = token
			a.opts.Recorder.RecordApplied()
			a.opts.Logger.Debug("applied change",
				zap.Int64("line", n),
				zap.String("action", change.Action),
				zap.String("token", token))

			cp.Lines, cp.Offset, cp.LineHash = n, start, lineHash(line)
			cp.LastToken, cp.UpdatedAt = token, time.Now().UTC()
			return saveCheckpoint(ctx, a.store, key, cp)
		})
		if verify && !seen && ctx.Err() == nil {
			return errMisaligned
		}
		return err
	}

	// A checkpoint with a line hash reopens the source at the last applied
	// line. If that line changed, lines are counted from the start instead.
	var err error
	if cp.Lines > 0 && cp.LineHash != "" {
		err = walk(cp.Offset, cp.Lines-1, true)
	} else {
		err = walk(0, 0, false)
	}
	if errors.Is(err, errMisaligned) {
		a.opts.Logger.Warn("checkpoint offset does not match change file, counting lines from the start",
			zap.String("source", src.Name()),
			zap.Int64("offset", cp.Offset))
		res.Lines, res.Resumed = 0, 0
		err = walk(0, 0, false)
	}
	if err != nil {
		return res, err
	}

	res.Completed = true
	if a.opts.DryRun {
		return res, nil
	}
	cp.Lines, cp.Completed, cp.UpdatedAt = res.Lines, true, time.Now().UTC()
	if err := saveCheckpoint(ctx, a.store, key, cp); err != nil {
		return res, err
	}
	return res, nil
}

func (a *Applier) apply(ctx context.Context, change Change) (string, error) {
	token, err := a.client.WithChangeToken(ctx, func(token string) error {
		req, err := SetChangeToken(change.Request, token)
		if err != nil {
			return err
		}
		_, err = a.client.InvokeRaw(ctx, change.Action, req)
		return err
	})
	if err != nil {
		return "", err
	}
	if a.opts.Wait {
		if err := a.client.WaitForChangeToken(ctx, token, a.opts.WaitInterval); err != nil {
			return token, errors.Wrap(err, "wait for change")
		}
	}
	return token, nil
}
