package services

import (
	"fmt"

	"fitbook/internal/cli"
)

type ShowCmd struct {
	ID string `arg:"" help:"Service ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	s, err := ctx.App.Services.Get(c.ID)
	if err != nil {
		// A missing service is a user-visible state, not a crash
		fmt.Println("Service not found.")
		return nil
	}

	fmt.Println(s.Name)
	fmt.Printf("  Duration: %s\n", s.Duration)
	fmt.Printf("  Price:    ₹%.0f\n", s.Price)
	if s.Description != "" {
		fmt.Printf("  %s\n", s.Description)
	}
	return nil
}
