// Command wafregional calls AWS WAF Regional, exports WebACLs, applies change
// files and checks IAM permissions.
//
//	wafregional call [flags] <Action> [request-json]
//	wafregional token [flags]
//	wafregional export -webacl <id> [flags]
//	wafregional apply -file <path|s3://bucket/key> [flags]
//	wafregional preflight -principal <arn> [flags]
//	wafregional media-demo [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: load .env: %v\n", err)
		os.Exit(1)
	}

	logger, err := glog.NewConsoleWithName("wafregional", glog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %+v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{"call", "call a WAF Regional action with a JSON request", runCall},
	{"token", "get a change token or its status", runToken},
	{"export", "export a WebACL and everything it references", runExport},
	{"apply", "apply a JSON-lines change file", runApply},
	{"preflight", "check IAM permissions for WAF Regional actions", runPreflight},
	{"media-demo", "push synthetic frames through a media source sink", runMediaDemo},
}

// env carries process-level dependencies into a subcommand.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	logger glog.Logger
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger glog.Logger) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		printUsage(stdout)
		if len(args) == 0 {
			return errors.New("no command given")
		}
		return nil
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, &env{stdin: stdin, stdout: stdout, logger: logger}, args[1:])
		}
	}
	printUsage(stdout)
	return errors.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: wafregional <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.usage)
	}
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}
