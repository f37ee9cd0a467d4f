// Command lfcli is the command line client for the Lost & Found registry API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"LostFound/internal/cli/commands"
	"LostFound/internal/config"
)

// заполняются через -ldflags при сборке
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprint(out, commands.FormatGlobalUsage())
		fmt.Fprintln(out, "\nFlags:")
		flag.PrintDefaults()
	}
	cfg := config.NewConfig()

	if cfg.Version {
		writeVersion(os.Stdout, cfg)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	stop()
	os.Exit(code)
}

func writeVersion(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "lfcli %s (built %s)\nserver: %s\n", version, buildDate, cfg.ServerURL)
}
