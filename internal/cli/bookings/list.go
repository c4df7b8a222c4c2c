package bookings

import (
	"context"
	"fmt"

	"fitbook/internal/cli"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.App.Bookings.LoadStored(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No bookings yet.")
		return nil
	}

	for _, b := range list {
		fmt.Println(cli.FormatBooking(b))
	}
	return nil
}
