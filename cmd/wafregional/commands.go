package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/gurre/waf-regional/changeset"
	"github.com/gurre/waf-regional/config"
	"github.com/gurre/waf-regional/mediasource"
	"github.com/gurre/waf-regional/preflight"
	"github.com/gurre/waf-regional/snapshot"
	"github.com/gurre/waf-regional/wafregional"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeRaw(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return errors.Wrap(err, "format response")
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// setup parses fs, builds the app and applies the command timeout.
func setup(ctx context.Context, e *env, fs *flag.FlagSet, args []string, cfg *config.Config, report *string) (*app, context.Context, context.CancelFunc, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	a, err := newApp(ctx, e, cfg, *report)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	return a, ctx, cancel, nil
}

func runCall(ctx context.Context, e *env, args []string) error {
	cfg := config.Default()
	fs := newFlagSet("call", e.stdout)
	report := bindConfig(fs, cfg)
	input := fs.String("input", "", "file holding the request JSON, - for stdin")
	autoToken := fs.Bool("auto-token", true, "fetch a change token for mutating actions")

	a, ctx, cancel, err := setup(ctx, e, fs, args, cfg, report)
	if err != nil {
		return err
	}
	defer cancel()

	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New("call needs an action name")
	}
	action := rest[0]
	if !wafregional.IsAction(action) {
		return errors.Errorf("unknown action %q", action)
	}

	request, err := readRequest(e.stdin, *input, rest[1:])
	if err != nil {
		return err
	}

	if cfg.DryRun {
		e.logger.Info("dry run, not calling", zap.String("action", action))
		return writeRaw(e.stdout, request)
	}

	var response json.RawMessage
	if *autoToken && wafregional.RequiresChangeToken(action) {
		_, err = a.waf.WithChangeToken(ctx, func(token string) error {
			req, err := changeset.SetChangeToken(request, token)
			if err != nil {
				return err
			}
			response, err = a.waf.InvokeRaw(ctx, action, req)
			return err
		})
	} else {
		response, err = a.waf.InvokeRaw(ctx, action, request)
	}
	if err != nil {
		return errors.Wrap(err, action)
	}
	if err := writeRaw(e.stdout, response); err != nil {
		return err
	}
	return a.finish(ctx)
}

// readRequest takes the request from an inline argument, a file or stdin,
// in that order, and defaults to an empty object.
func readRequest(stdin io.Reader, input string, inline []string) (json.RawMessage, error) {
	var data []byte
	switch {
	case len(inline) > 0:
		data = []byte(strings.Join(inline, " "))
	case input == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		data = b
	case input != "":
		b, err := os.ReadFile(input)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", input)
		}
		data = b
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(data) || data[0] != '{' {
		return nil, errors.New("request must be a JSON object")
	}
	return data, nil
}

func runToken(ctx context.Context, e *env, args []string) error {
	cfg := config.Default()
	fs := newFlagSet("token", e.stdout)
	report := bindConfig(fs, cfg)
	status := fs.String("status", "", "print the status of this change token instead of getting a new one")
	wait := fs.Bool("wait", false, "with -status, wait until the change is INSYNC")
	interval := fs.Duration("interval", 5*time.Second, "poll interval for -wait")

	a, ctx, cancel, err := setup(ctx, e, fs, args, cfg, report)
	if err != nil {
		return err
	}
	defer cancel()

	if *status == "" {
		out, err := a.waf.GetChangeToken(ctx, &wafregional.GetChangeTokenInput{})
		if err != nil {
			return err
		}
		if err := writeJSON(e.stdout, out); err != nil {
			return err
		}
		return a.finish(ctx)
	}

	if *wait {
		if err := a.waf.WaitForChangeToken(ctx, *status, *interval); err != nil {
			return err
		}
	}
	out, err := a.waf.GetChangeTokenStatus(ctx, &wafregional.GetChangeTokenStatusInput{ChangeToken: status})
	if err != nil {
		return err
	}
	if err := writeJSON(e.stdout, out); err != nil {
		return err
	}
	return a.finish(ctx)
}

func runExport(ctx context.Context, e *env, args []string) error {
	cfg := config.Default()
	fs := newFlagSet("export", e.stdout)
	report := bindConfig(fs, cfg)
	webACLID := fs.String("webacl", "", "WebACL id to export")
	printSnap := fs.Bool("print", false, "write the snapshot JSON to stdout")

	a, ctx, cancel, err := setup(ctx, e, fs, args, cfg, report)
	if err != nil {
		return err
	}
	defer cancel()

	if *webACLID == "" {
		return errors.New("-webacl is required")
	}

	snap, err := snapshot.NewExporter(a.waf, cfg.Workers, e.logger).Export(ctx, *webACLID)
	if err != nil {
		return err
	}
	if !cfg.DryRun {
		if err := snapshot.Save(ctx, a.store, snap); err != nil {
			return err
		}
		e.logger.Info("snapshot saved",
			zap.String("store", cfg.StoreURI),
			zap.String("key", snapshot.Key(*webACLID)))
	}
	if *printSnap {
		if err := writeJSON(e.stdout, snap); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(e.stdout, snap.String())
	}
	return a.finish(ctx)
}

func runApply(ctx context.Context, e *env, args []string) error {
	cfg := config.Default()
	fs := newFlagSet("apply", e.stdout)
	report := bindConfig(fs, cfg)
	file := fs.String("file", "", "change file: a local path or s3://bucket/key")
	runID := fs.String("run-id", "", "checkpoint name (defaults to one derived from -file)")
	skipCorrupt := fs.Bool("skip-corrupt", false, "skip lines that are not valid changes")
	wait := fs.Bool("wait", false, "wait for each change to reach INSYNC")
	interval := fs.Duration("wait-interval", 5*time.Second, "poll interval for -wait")

	a, ctx, cancel, err := setup(ctx, e, fs, args, cfg, report)
	if err != nil {
		return err
	}
	defer cancel()

	if *file == "" {
		return errors.New("-file is required")
	}
	src, err := changeset.OpenSource(*file, a.streamer())
	if err != nil {
		return err
	}

	applier := changeset.NewApplier(a.waf, a.store, changeset.Options{
		RunID:        *runID,
		DryRun:       cfg.DryRun,
		SkipCorrupt:  *skipCorrupt,
		Wait:         *wait,
		WaitInterval: *interval,
		Recorder:     a.metrics,
		Logger:       e.logger,
	})
	res, err := applier.Apply(ctx, src)
	if werr := writeJSON(e.stdout, res); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return err
	}
	return a.finish(ctx)
}

func runPreflight(ctx context.Context, e *env, args []string) error {
	cfg := config.Default()
	fs := newFlagSet("preflight", e.stdout)
	report := bindConfig(fs, cfg)
	principal := fs.String("principal", "", "IAM user or role ARN to check")
	actions := fs.String("actions", "", "comma separated actions (defaults to every mutating action)")
	resource := fs.String("resource", "", "resource ARN to simulate against")

	a, ctx, cancel, err := setup(ctx, e, fs, args, cfg, report)
	if err != nil {
		return err
	}
	defer cancel()

	names := preflight.MutatingActions()
	if *actions != "" {
		names = nil
		for _, name := range strings.Split(*actions, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	var resources []string
	if *resource != "" {
		resources = append(resources, *resource)
	}

	results, err := preflight.NewChecker(a.iam(), e.logger).Check(ctx, *principal, names, resources...)
	if err != nil {
		return err
	}
	denied := 0
	for _, r := range results {
		fmt.Fprintf(e.stdout, "%-40s %s\n", r.Action, r.Decision)
		if !r.Allowed {
			denied++
		}
	}
	if denied > 0 {
		return errors.Wrapf(preflight.ErrDenied, "%d of %d actions denied", denied, len(results))
	}
	return a.finish(ctx)
}

// mediaSummary is what media-demo prints once the stream drains.
type mediaSummary struct {
	Stream        string        `json:"stream"`
	Frames        int           `json:"frames"`
	KeyFrames     int           `json:"keyFrames"`
	Bytes         int           `json:"bytes"`
	FormatChanges int           `json:"formatChanges"`
	Metadata      int           `json:"metadata"`
	Duration      time.Duration `json:"duration"`
}

// runMediaDemo feeds synthetic frames through a Sink into a BufferedStream and
// reports what the consumer received. It needs no AWS access.
func runMediaDemo(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("media-demo", e.stdout)
	name := fs.String("stream", "demo-stream", "stream name")
	frames := fs.Int("frames", 100, "frames to produce")
	fps := fs.Int("fps", 25, "frames per second")
	gop := fs.Int("gop", 25, "frames per key frame")
	buffer := fs.Int("buffer", 8, "stream buffer capacity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *frames < 0 || *fps < 1 || *gop < 1 || *buffer < 1 {
		return errors.New("frames must be >= 0 and fps, gop and buffer >= 1")
	}

	stream := mediasource.NewBufferedStream(*buffer)
	sink := mediasource.NewSink(*name, stream, e.logger)
	summary := mediaSummary{Stream: *name}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for ev := range stream.Events() {
			switch ev.Kind {
			case mediasource.EventFrame:
				summary.Frames++
				summary.Bytes += len(ev.Frame.Data)
				if ev.Frame.IsKeyFrame() {
					summary.KeyFrames++
				}
				summary.Duration = ev.Frame.PresentationTS + ev.Frame.Duration
			case mediasource.EventFormatChanged:
				summary.FormatChanges++
			case mediasource.EventMetadata:
				summary.Metadata++
			}
		}
		return nil
	})
	g.Go(func() error {
		defer func() { _ = stream.Close() }()
		return produce(ctx, sink, *frames, *fps, *gop)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return writeJSON(e.stdout, summary)
}

func produce(ctx context.Context, sink *mediasource.Sink, frames, fps, gop int) error {
	// H.264 SPS/PPS stand-in.
	if err := sink.OnCodecPrivateData(ctx, []byte{0x01, 0x64, 0x00, 0x1f}); err != nil {
		return err
	}
	if err := sink.OnFragmentMetadata(ctx, "source", "media-demo", true); err != nil {
		return err
	}

	step := time.Second / time.Duration(fps)
	for i := range frames {
		ts := time.Duration(i) * step
		frame := mediasource.Frame{
			Index:          uint32(i),
			DecodingTS:     ts,
			PresentationTS: ts,
			Duration:       step,
			TrackID:        mediasource.DefaultTrackID,
			Data:           bytes.Repeat([]byte{byte(i)}, 64),
		}
		if i%gop == 0 {
			frame.Flags = mediasource.FrameFlagKeyFrame
			frame.Data = bytes.Repeat([]byte{byte(i)}, 512)
		}
		if err := sink.OnFrame(ctx, frame); err != nil {
			return err
		}
	}
	return nil
}
