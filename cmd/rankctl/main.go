package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/collegerank/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("rankctl: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
