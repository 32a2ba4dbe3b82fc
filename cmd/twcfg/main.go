package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/twcfg/internal/cli"
	"github.com/arthur-debert/twcfg/pkg/ui/styles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprint(os.Stderr, errorStyle.Render(cli.FormatError(err)))
		os.Exit(1)
	}
}
