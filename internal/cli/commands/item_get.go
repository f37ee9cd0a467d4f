package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"context"
	"errors"
	"fmt"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "Показать заявку по id" }
func (itemGetCmd) Usage() string       { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	it, err := newClient(cfg).GetItem(ctx, args[0])
	if errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("item %s not found", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Item:")
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
