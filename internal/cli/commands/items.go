package commands

import (
	"LostFound/internal/config"
	"context"
	"fmt"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать активные заявки (потерянные или найденные)"
}
func (itemsCmd) Usage() string { return "items <lost|found>" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	kind, ok := parseKind(args[0])
	if !ok {
		return ErrUsage
	}
	list, err := newClient(cfg).ListItems(ctx, kind)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %s  %s  [%s]  %s, %s\n", it.ID, it.Title, it.Category, it.Location, it.Date)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
