// Package services contains the application services of the journal client.
// This file defines the session service: simulated sign-in and sign-up,
// sign-out, and reading the current user.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/client/repositories/session"
	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/dmitrijs2005/mindful/internal/logging"
)

// AuthService manages the single current-user session.
//
// Contract:
//   - SignIn: accepts any non-empty email, derives the display name from its
//     local part and stores the user as the current session. The password is
//     never checked or stored.
//   - SignUp: identical to SignIn.
//   - SignOut: clears the session; check-in data is kept.
//   - CurrentUser: returns nil when there is no session or it cannot be read.
//
// Failures of SignIn and SignUp wrap common.ErrorAuthentication.
type AuthService interface {
	SignIn(ctx context.Context, email string, password []byte) (*models.User, error)
	SignUp(ctx context.Context, email string, password []byte) (*models.User, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
}

type authService struct {
	sessions session.Repository
	delay    Latency
	logger   logging.Logger
}

// NewAuthService constructs an AuthService over the given session repository.
func NewAuthService(sessions session.Repository, delay Latency, logger logging.Logger) AuthService {
	return &authService{sessions: sessions, delay: delay, logger: logger}
}

func (a *authService) SignIn(ctx context.Context, email string, password []byte) (*models.User, error) {
	return a.authenticate(ctx, "sign in", email, password)
}

// SignUp has no account-creation semantics of its own.
func (a *authService) SignUp(ctx context.Context, email string, password []byte) (*models.User, error) {
	return a.authenticate(ctx, "sign up", email, password)
}

func (a *authService) authenticate(ctx context.Context, op, email string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%s: %w: %w", op, common.ErrorAuthentication, common.ErrorValidation)
	}

	if err := wait(ctx, a.delay.Auth); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, common.ErrorAuthentication, err)
	}

	user := models.NewUser(email)
	if err := a.sessions.Save(ctx, user); err != nil {
		a.logger.Error(ctx, "session save failed", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w: %w", op, common.ErrorAuthentication, err)
	}

	a.logger.Info(ctx, "signed in", "uid", user.UID, "op", op)
	return user, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	a.logger.Info(ctx, "signed out")
	return nil
}

// CurrentUser degrades every read or decode failure to "no session".
func (a *authService) CurrentUser(ctx context.Context) *models.User {
	user, err := a.sessions.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session unreadable, treating as signed out", "error", err)
		return nil
	}
	return user
}
