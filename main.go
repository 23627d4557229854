package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/uefisettings/uefisettings/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := app.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
