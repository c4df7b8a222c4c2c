package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"fitbook/internal/auth"
	"fitbook/internal/cli"
	"fitbook/internal/cli/bookings"
	"fitbook/internal/cli/services"
	"fitbook/internal/cli/system"
	"fitbook/internal/constants"
	apperrors "fitbook/internal/errors"
	"fitbook/internal/logger"
	"fitbook/internal/storage"
	"fitbook/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json for the JSON store, anything else for SQLite)." type:"path" default:"~/.config/fitbook/fitbook.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	Auth    string `help:"Credential verifier (static|keyring)." enum:"static,keyring" default:"static"`

	Init    system.InitCmd   `cmd:"" help:"Initialize on-device storage."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Service struct {
		List    services.ListCmd    `cmd:"" help:"List catalog services." default:"1"`
		Show    services.ShowCmd    `cmd:"" help:"Show one service."`
		Refresh services.RefreshCmd `cmd:"" help:"Refresh the service catalog."`
	} `cmd:"" help:"Browse the service catalog."`
	Booking struct {
		Add    bookings.AddCmd    `cmd:"" help:"Book a service."`
		List   bookings.ListCmd   `cmd:"" help:"List your bookings." default:"1"`
		Delete bookings.DeleteCmd `cmd:"" help:"Cancel a booking."`
	} `cmd:"" help:"Manage bookings."`
	Account struct {
		Enroll system.EnrollCmd `cmd:"" help:"Store an account password in the OS keyring."`
		Remove system.RemoveCmd `cmd:"" help:"Remove an account password from the OS keyring."`
	} `cmd:"" help:"Manage keyring accounts."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("On-device service booking companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Pick the storage backend by file extension, JSON being the default
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}

	// Load the provider before running the command (init handles its own)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := provider.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer provider.Close()
	}

	var verifier auth.Verifier
	if CLI.Auth == "keyring" {
		verifier = auth.NewKeyringVerifier()
	} else {
		verifier = auth.NewStaticVerifier()
	}

	app := store.New(provider)
	defer app.Close()

	appCtx := &cli.Context{
		Provider: provider,
		App:      app,
		Verifier: verifier,
	}

	if err := ctx.Run(appCtx); err != nil {
		app.Close()
		apperrors.Fatal(err)
	}
}
