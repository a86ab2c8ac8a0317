package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/audora0212/inhashapp/internal/cli"
	"github.com/audora0212/inhashapp/internal/cli/items"
	"github.com/audora0212/inhashapp/internal/cli/settings"
	"github.com/audora0212/inhashapp/internal/cli/system"
	"github.com/audora0212/inhashapp/internal/constants"
	apperrors "github.com/audora0212/inhashapp/internal/errors"
	"github.com/audora0212/inhashapp/internal/logger"
	"github.com/audora0212/inhashapp/internal/lms"
	"github.com/audora0212/inhashapp/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." type:"string" default:"~/.config/inhash/inhash.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd    `cmd:"" help:"Initialize inhash storage."`
	Migrate  system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Tui      system.TuiCmd     `cmd:"" help:"Launch the interactive calendar TUI." default:"1"`
	Calendar cli.CalendarCmd   `cmd:"" help:"Print a month calendar with due-day markers."`
	Link     cli.LinkCmd       `cmd:"" help:"Link an LMS account and collect assignments."`
	Login    cli.LoginCmd      `cmd:"" help:"Log in and store a session token."`
	Logout   cli.LogoutCmd     `cmd:"" help:"Log out and discard the session token."`
	Item     struct {
		Add    items.AddCmd    `cmd:"" help:"Add a schedule item."`
		List   items.ListCmd   `cmd:"" help:"List schedule items." default:"1"`
		Delete items.DeleteCmd `cmd:"" help:"Delete a schedule item."`
	} `cmd:"" help:"Manage schedule items."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Assignment and lecture schedule companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// Log files live next to the SQLite database; with Postgres the
	// default config dir is used instead.
	logDir := filepath.Dir(storage.ExpandPath(constants.DefaultConfigPath))
	if !storage.IsPostgresConnString(CLI.Config) {
		logDir = filepath.Dir(storage.ExpandPath(CLI.Config))
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if storage.IsPostgresConnString(CLI.Config) {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintf(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use the environment or a .pgpass file for the password.\n")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		LMS:   lms.NewMockClient(),
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
