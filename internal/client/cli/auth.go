package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const msgAuthFailed = "Authentication failed. Please try again."

// errEmailRequired is reported before any service call, like a form that
// refuses to submit.
var errEmailRequired = errors.New("email is required")

// SignIn prompts for credentials and opens the dashboard on success.
func (a *App) SignIn(ctx context.Context) error {
	return a.authenticate(ctx, a.authService.SignIn)
}

// SignUp is SignIn under another name: there is no account creation step.
func (a *App) SignUp(ctx context.Context) error {
	return a.authenticate(ctx, a.authService.SignUp)
}

type authFunc func(ctx context.Context, email string, password []byte) (*models.User, error)

func (a *App) authenticate(ctx context.Context, fn authFunc) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		fmt.Fprintln(a.out, "Please enter your email.")
		return errEmailRequired
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fmt.Fprintln(a.out, "Signing in...")
	user, err := fn(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "authentication failed", "error", err)
		fmt.Fprintln(a.out, msgAuthFailed)
		return err
	}

	a.openDashboard(ctx, user)
	return nil
}

// Logout clears the session and returns to the auth screen. Journal data is
// kept in the store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		a.logger.Error(ctx, "sign out failed", "error", err)
		return err
	}
	a.user = nil
	a.history = nil
	a.screen = ScreenAuth
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
