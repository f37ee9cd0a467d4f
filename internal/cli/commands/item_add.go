package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

// formFields - поля формы, которые принимает сервер
var formFields = map[string]bool{
	"title":       true,
	"category":    true,
	"description": true,
	"location":    true,
	"date":        true,
	"owner_name":  true,
	"owner_email": true,
	"owner_phone": true,
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Создать заявку; image=<путь> прикладывает фото"
}
func (itemAddCmd) Usage() string { return "item-add <lost|found> key=value... [image=path]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	kind, ok := parseKind(args[0])
	if !ok {
		return ErrUsage
	}
	fields := make(map[string]string, len(args)-1)
	var image string
	for _, a := range args[1:] {
		k, v, found := strings.Cut(a, "=")
		k = strings.ToLower(strings.TrimSpace(k))
		switch {
		case !found || k == "":
			return ErrUsage
		case k == "image":
			image = v
		case formFields[k]:
			fields[k] = v
		default:
			return fmt.Errorf("unknown field %q", k)
		}
	}

	it, err := newClient(cfg).CreateItem(ctx, kind, fields, image)
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && se.Code == 422 {
			return fmt.Errorf("validation failed: %s", strings.TrimSpace(se.Body))
		}
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printItem(it)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
