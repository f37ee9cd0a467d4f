package commands

import (
	"LostFound/internal/config"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// коды выхода lfcli
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dispatch runs the command named by args[0] and returns the process exit code:
// 0 on success, 1 when the command failed, 2 on a usage problem.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	switch {
	case name == "help":
		return dispatchHelp(args[1:])
	case name == "-h" || name == "--help" || slices.Contains(args[1:], "--help"):
		if c, ok := Get(name); ok {
			fmt.Fprint(Out, FormatCommandHelp(c))
			return exitOK
		}
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}

	c, ok := Get(name)
	if !ok {
		unknownCommand(name)
		return exitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprint(Out, FormatCommandHelp(c))
		return exitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitError
	}
}

// lfcli help [command]
func dispatchHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	name := strings.ToLower(args[0])
	c, ok := Get(name)
	if !ok {
		unknownCommand(name)
		return exitUsage
	}
	fmt.Fprint(Out, FormatCommandHelp(c))
	return exitOK
}

func unknownCommand(name string) {
	fmt.Fprintf(Out, "Unknown command: %s\nRun 'lfcli help' for the list of commands.\n", name)
}
