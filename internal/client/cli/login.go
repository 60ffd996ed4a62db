package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pokedex/internal/common"
)

// Login prompts for credentials and opens a session. The failure message is
// deliberately generic: it does not reveal whether the email is registered.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Username)
	return nil
}

// Logout ends the session. Logging out while logged out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
