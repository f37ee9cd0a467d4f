package commands

import (
	"LostFound/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Проверить доступность сервера" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	msg, err := newClient(cfg).Root(ctx)
	if err != nil {
		return err
	}
	if msg == "" {
		return fmt.Errorf("unexpected response from %s", cfg.ServerURL)
	}
	fmt.Fprintf(Out, "Status: %s (%s)\n", msg, cfg.ServerURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
