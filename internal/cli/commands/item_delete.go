package commands

import (
	"LostFound/internal/config"
	"context"
	"fmt"
)

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Удалить заявку" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	msg, err := newClient(cfg).DeleteItem(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ %s: %s\n", args[0], msg)
	return nil
}

func init() { RegisterCmd(itemDeleteCmd{}) }
