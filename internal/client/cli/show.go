package cli

import (
	"context"
	"fmt"
)

// Show fetches and prints the detail record for one catalog item.
func (a *App) Show(ctx context.Context, name string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	d, err := a.api.Detail(ctx, name)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load details:", err)
		return err
	}

	fmt.Fprintln(a.out, "Name:", d.Name)
	if d.Sprites.FrontDefault != "" {
		fmt.Fprintln(a.out, "Sprite:", d.Sprites.FrontDefault)
	}
	if abilities := d.AbilityNames(); len(abilities) > 0 {
		fmt.Fprintln(a.out, "Abilities:")
		for _, ab := range abilities {
			fmt.Fprintln(a.out, " -", ab)
		}
	}
	return nil
}
