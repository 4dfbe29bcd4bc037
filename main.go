package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/temirov/gitflow/cmd/cli"
	"github.com/temirov/gitflow/internal/ui"
)

const (
	exitErrorTemplateConstant           = "%s Error: %v\n"
	cancellationMessageTemplateConstant = "\n%s Operation cancelled by user"
)

// main executes the gitflow command-line application.
func main() {
	executionContext, stopSignalHandling := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignalHandling()

	executionError := cli.ExecuteContext(executionContext)
	if executionContext.Err() != nil {
		fmt.Fprintf(os.Stderr, cancellationMessageTemplateConstant+"\n", ui.GlyphStop)
		os.Exit(1)
	}
	if executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, ui.GlyphFailure, executionError)
		os.Exit(1)
	}
}
