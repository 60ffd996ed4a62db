package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pokedex/internal/common"
)

// Register prompts for account details and creates the account. Success does
// not log the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, username, phone, string(password)); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can log in now.")
	return nil
}
