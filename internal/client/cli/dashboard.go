package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mindful/internal/client/models"
)

// Start picks the initial screen from the stored session. A restored user
// gets sample data on first use and the dashboard; otherwise the auth screen
// is shown.
func (a *App) Start(ctx context.Context) {
	user := a.authService.CurrentUser(ctx)
	if user == nil {
		a.screen = ScreenAuth
		fmt.Fprintln(a.out, "Please sign in to continue. Commands: signin, signup, help, exit")
		return
	}

	if _, err := a.checkInService.SeedInitialData(ctx, user.UID); err != nil {
		a.logger.Warn(ctx, "seeding sample data failed", "error", err)
	}
	a.openDashboard(ctx, user)
}

func (a *App) openDashboard(ctx context.Context, user *models.User) {
	a.user = user
	a.screen = ScreenDashboard
	a.loadHistory(ctx)
	renderDashboard(a.out, a.user, a.history)
}

// loadHistory replaces the cached history. On failure the previous history
// is dropped rather than shown stale.
func (a *App) loadHistory(ctx context.Context) {
	if a.user == nil {
		a.history = nil
		return
	}
	fmt.Fprintln(a.out, "Loading history...")
	history, err := a.checkInService.History(ctx, a.user.UID)
	if err != nil {
		a.logger.Warn(ctx, "history unavailable", "error", err)
		history = nil
	}
	a.history = history
}

// Dashboard prints the full dashboard from the cached history.
func (a *App) Dashboard(ctx context.Context) error {
	renderDashboard(a.out, a.user, a.history)
	return nil
}

// History prints the history list only.
func (a *App) History(ctx context.Context) error {
	renderHistory(a.out, a.history)
	return nil
}

// Trend prints the mood chart only.
func (a *App) Trend(ctx context.Context) error {
	renderTrend(a.out, a.history)
	return nil
}

// Refresh reloads history from the store and prints the dashboard.
func (a *App) Refresh(ctx context.Context) error {
	a.loadHistory(ctx)
	renderDashboard(a.out, a.user, a.history)
	return nil
}
