package commands

import (
	"LostFound/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "items".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "item-get <id>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out - общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// helpGroups задаёт порядок секций в справке.
var helpGroups = []struct {
	title  string
	prefix string
}{
	{"Item commands:", "item"},
	{"Service commands:", ""},
}

var helpExamples = []string{
	"lfcli items lost",
	"lfcli item-add found title=\"Black wallet\" category=Wallets location=\"Central station\" date=2026-10-01 owner_name=Alex owner_email=alex@example.com image=./wallet.jpg",
	"lfcli item-get 0b6f3c2e-5d1a-4c8e-9f27-6a4e1d2b7c90",
	"lfcli -a lostfound.example.com -https status",
}

// sortedByGroup раскладывает команды по секциям справки, внутри секции по имени.
func sortedByGroup() [][]Command {
	out := make([][]Command, len(helpGroups))
	for _, c := range registry {
		for i, g := range helpGroups {
			if strings.HasPrefix(c.Name(), g.prefix) {
				out[i] = append(out[i], c)
				break
			}
		}
	}
	for _, cmds := range out {
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	}
	return out
}

// FormatGlobalUsage builds the lfcli help page: flags, grouped commands and examples.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("lfcli - command line client for the Lost & Found registry\n\n")
	b.WriteString("Usage:\n  lfcli [-a <host:port>] [-https] <command> [args]\n")
	b.WriteString("  lfcli help <command>\n")

	for i, cmds := range sortedByGroup() {
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", helpGroups[i].title)
		width := 0
		for _, c := range cmds {
			width = max(width, len(c.Usage()))
		}
		for _, c := range cmds {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, c.Usage(), c.Description())
		}
	}

	b.WriteString("\nExamples:\n")
	for _, e := range helpExamples {
		fmt.Fprintf(&b, "  %s\n", e)
	}
	return b.String()
}

// FormatCommandHelp печатает справку по одной команде.
func FormatCommandHelp(c Command) string {
	return fmt.Sprintf("Usage: lfcli %s\n\n  %s\n", c.Usage(), c.Description())
}
