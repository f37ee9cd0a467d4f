package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"LostFound/internal/model"
	"fmt"
	"strings"
)

func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(api.ClientOpts{BaseURL: cfg.ServerURL})
}

func parseKind(s string) (model.Kind, bool) {
	k := model.Kind(strings.ToLower(strings.TrimSpace(s)))
	return k, k.Valid()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// printItem печатает заявку построчно
func printItem(it *model.Item) {
	fmt.Fprintf(Out, "  id:          %s\n", it.ID)
	fmt.Fprintf(Out, "  type:        %s\n", it.Kind)
	fmt.Fprintf(Out, "  title:       %s\n", it.Title)
	fmt.Fprintf(Out, "  category:    %s\n", it.Category)
	fmt.Fprintf(Out, "  description: %s\n", it.Description)
	fmt.Fprintf(Out, "  location:    %s\n", it.Location)
	fmt.Fprintf(Out, "  date:        %s\n", it.Date)
	fmt.Fprintf(Out, "  owner:       %s <%s> %s\n", it.OwnerName, it.OwnerEmail, deref(it.OwnerPhone))
	fmt.Fprintf(Out, "  image:       %s\n", deref(it.ImageURL))
	if it.ImageDescription != nil {
		fmt.Fprintf(Out, "  image desc:  %s\n", *it.ImageDescription)
	}
	fmt.Fprintf(Out, "  status:      %s\n", it.Status)
	fmt.Fprintf(Out, "  created_at:  %s\n", it.CreatedAt.Format("2006-01-02 15:04:05 MST"))
}
