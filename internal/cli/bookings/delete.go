package bookings

import (
	"context"
	"fmt"

	"fitbook/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Booking ID to cancel."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	// Hydrate first so the delete works against the persisted list
	if _, err := ctx.App.Bookings.LoadStored(context.Background()); err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	if err := ctx.App.Bookings.DeleteAndSave(context.Background(), c.ID); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	fmt.Printf("Cancelled booking %s\n", c.ID)
	return nil
}
