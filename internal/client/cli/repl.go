package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentScreen() Screen
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	CheckIn(ctx context.Context) error
	Dashboard(ctx context.Context) error
	History(ctx context.Context) error
	Trend(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpAuth      = "Available commands: signin, signup, help, exit"
	helpDashboard = "Available commands: checkin, dashboard, history, trend, refresh, logout, help, exit"
)

// runREPL starts a simple read-eval-print loop for the journal CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Which commands are accepted depends on the
// current screen. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Auth screen:
//	  - help             : show available commands
//	  - signin | login   : sign in
//	  - signup           : create an account (same as sign in)
//	  - exit | quit      : leave the program
//
//	Dashboard:
//	  - help             : show available commands
//	  - checkin | new    : record how you feel
//	  - dashboard        : show greeting, stats, trend and history
//	  - history          : show the history list
//	  - trend            : show the mood chart
//	  - refresh          : reload history from storage
//	  - logout           : sign out
//	  - exit | quit      : leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mindful (%s)> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if a.currentScreen() == ScreenAuth {
			dispatchAuth(ctx, a, cmd)
		} else {
			dispatchDashboard(ctx, a, cmd)
		}
	}
}

func dispatchAuth(ctx context.Context, a execIface, cmd string) {
	switch cmd {
	case "help":
		printlnFn(helpAuth)
	case "signin", "login":
		_ = a.SignIn(ctx)
	case "signup", "register":
		_ = a.SignUp(ctx)
	case "checkin", "dashboard", "history", "trend", "refresh", "logout":
		printlnFn("Please sign in first.")
	default:
		printlnFn("Unknown command:", cmd)
	}
}

func dispatchDashboard(ctx context.Context, a execIface, cmd string) {
	switch cmd {
	case "help":
		printlnFn(helpDashboard)
	case "checkin", "new":
		_ = a.CheckIn(ctx)
	case "dashboard", "d":
		_ = a.Dashboard(ctx)
	case "history", "h":
		_ = a.History(ctx)
	case "trend", "t":
		_ = a.Trend(ctx)
	case "refresh", "r":
		_ = a.Refresh(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "signin", "login", "signup", "register":
		printlnFn("Already signed in. Use 'logout' first.")
	default:
		printlnFn("Unknown command:", cmd)
	}
}
