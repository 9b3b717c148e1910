// cmd/nucalign/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"helixalign/internal/nucapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := nucapp.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
