package system

import (
	"fmt"
	"os"

	"fitbook/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists." short:"f"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := os.Remove(ctx.Provider.GetConfigPath()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing storage: %w", err)
		}
	}

	if err := ctx.Provider.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Provider.GetConfigPath())
	return nil
}
