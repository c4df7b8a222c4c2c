package services

import (
	"fmt"

	"fitbook/internal/cli"
)

type ListCmd struct {
	Search string `short:"s" help:"Filter services by name (case-insensitive substring)."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	matches := ctx.App.Services.Search(c.Search)
	if len(matches) == 0 {
		fmt.Println("No services match.")
		return nil
	}
	for _, s := range matches {
		fmt.Println(cli.FormatService(s))
	}
	return nil
}
