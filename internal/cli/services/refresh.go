package services

import (
	"context"
	"fmt"

	"fitbook/internal/cli"
)

type RefreshCmd struct{}

func (c *RefreshCmd) Run(ctx *cli.Context) error {
	fmt.Println("Refreshing services…")
	list, err := ctx.App.Services.Refresh(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Catalog refreshed: %d services.\n", len(list))
	return nil
}
