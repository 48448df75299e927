package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gyongyosigabor/gghelper/cmd"
	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
)

func main() {
	// Ctrl+C cancels the context; every blocking step watches it and
	// winds down as a user cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		handler := apperrors.NewHandler()
		fmt.Fprintln(os.Stderr, handler.Format(err))
		os.Exit(handler.ExitCode(err))
	}
}
