package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/okian/envelopes/internal/cli"
	"github.com/okian/envelopes/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging
	noColor := !isatty.IsTerminal(os.Stderr.Fd())
	if err := logger.Init(logger.WithNoColor(noColor)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.Get().Error(ctx, "command failed", logger.Error(err))
		return 1
	}
	return 0
}
