package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitbook/internal/cli"
	"fitbook/internal/models"
	"fitbook/internal/utils"
	"fitbook/internal/validation"
)

type AddCmd struct {
	Service string `arg:"" help:"Service ID to book."`
	Date    string `short:"d" help:"Booking date (DD-MM-YYYY). Defaults to today."`
	Time    string `short:"t" help:"Booking time (HH:MM AM/PM). Defaults to now."`
	Notes   string `short:"n" help:"Optional notes."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.App.Services.Get(c.Service)
	if err != nil {
		return fmt.Errorf("service %q not found", c.Service)
	}

	now := time.Now()
	date := c.Date
	if date == "" {
		date = utils.FormatBookingDate(now)
	}
	timeStr := c.Time
	if timeStr == "" {
		timeStr = utils.FormatBookingTime(now)
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Date:        date,
		Time:        timeStr,
		Notes:       c.Notes,
	}

	if err := validation.ValidateBooking(booking); err != nil {
		return err
	}

	if err := ctx.App.Bookings.AddAndSave(context.Background(), booking); err != nil {
		return fmt.Errorf("booking failed: %w", err)
	}

	fmt.Printf("Booked %s on %s at %s (ID: %s)\n", svc.Name, date, timeStr, booking.ID)
	return nil
}
