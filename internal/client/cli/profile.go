package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pokedex/internal/client/services"
	"github.com/dmitrijs2005/pokedex/internal/common"
)

// Profile prompts for the fields to change; blank answers keep the current
// values.
func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "New email (leave blank to keep)", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "New phone (leave blank to keep)", a.out)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "New password (leave blank to keep)")
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var upd services.ProfileUpdate
	if email != "" {
		upd.Email = &email
	}
	if phone != "" {
		upd.Phone = &phone
	}
	if len(password) > 0 {
		pw := string(password)
		upd.NewPassword = &pw
	}
	if upd.Email == nil && upd.Phone == nil && upd.NewPassword == nil {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	if err := a.session.UpdateProfile(ctx, upd); err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			fmt.Fprintln(a.out, "That email is already in use.")
		} else {
			fmt.Fprintln(a.out, "Failed to update profile:", err)
		}
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// DeleteAccount removes the account after an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, "Delete your account permanently? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		fmt.Fprintln(a.out, "Failed to delete account:", err)
		return err
	}
	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}
