package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/indaco/update-plist/internal/config"
	"github.com/indaco/update-plist/internal/core"
	"github.com/indaco/update-plist/internal/logging"
	"github.com/indaco/update-plist/internal/printer"
	"github.com/indaco/update-plist/internal/report"
	"github.com/indaco/update-plist/internal/tui"
	"github.com/indaco/update-plist/internal/updater"
	"github.com/indaco/update-plist/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// UsageLine is printed when the positional arguments are wrong.
const UsageLine = "Usage: update_plist <plist_file> <version> <build>"

var (
	// ErrUsage is returned when the positional argument count is not three.
	ErrUsage = errors.New("expected exactly three arguments")

	// ErrFailed is returned when the update (or its configuration) failed.
	// The reason has already been reported to the user.
	ErrFailed = errors.New("update failed")
)

// Replaced in tests.
var (
	isInteractive = tui.IsInteractive
	newPrompter   = func(theme string) tui.Prompter { return tui.NewHuhPrompter(theme) }
)

// New builds the root command. Outcome lines go to stdout, diagnostics to stderr.
func New(stdout, stderr io.Writer) *urfavecli.Command {
	return &urfavecli.Command{
		Name:            "update_plist",
		Version:         version.GetVersion(),
		Usage:           "Set the bundle version keys of a property list file",
		ArgsUsage:       "<plist_file> <version> <build>",
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML or TOML config file",
			},
			&urfavecli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would change without writing the file",
			},
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Print the outcome as a JSON object",
			},
			&urfavecli.BoolFlag{
				Name:  "confirm",
				Usage: "Ask before writing (interactive terminals only)",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug details to stderr",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			return ctx, nil
		},
		Action: runUpdate,
	}
}

// runUpdate validates the arguments and performs the update.
func runUpdate(ctx context.Context, cmd *urfavecli.Command) error {
	stdout, stderr := cmd.Root().Writer, cmd.Root().ErrWriter

	if cmd.Args().Len() != 3 {
		_, _ = fmt.Fprintln(stdout, UsageLine)
		return ErrUsage
	}
	args := cmd.Args().Slice()
	path, ver, build := args[0], args[1], args[2]

	logger := logging.New(stderr, cmd.Bool("verbose"))
	fs := core.NewOSFileSystem()

	cfg, err := config.Load(ctx, fs, cmd.String("config"))
	if err != nil {
		_ = printer.FprintError(stdout, fmt.Sprintf("Error loading config: %v", err))
		return ErrFailed
	}

	opts := cfg.UpdaterOptions()
	opts = append(opts,
		updater.WithLogger(logger),
		updater.WithDryRun(cmd.Bool("dry-run")),
		updater.WithReporter(reporterFor(cmd.Bool("json"), stdout)),
	)
	if cmd.Bool("confirm") {
		if fn := confirmFunc(cfg, logger); fn != nil {
			opts = append(opts, updater.WithConfirm(fn))
		}
	}

	res := updater.New(fs, opts...).UpdateVersion(ctx, path, ver, build)
	if !res.OK() {
		return ErrFailed
	}
	return nil
}

func reporterFor(asJSON bool, w io.Writer) updater.Reporter {
	if asJSON {
		return report.NewJSONReporter(w)
	}
	return updater.NewTextReporter(w)
}

// confirmFunc returns nil when no prompt can be shown.
func confirmFunc(cfg *config.Config, logger *log.Logger) updater.ConfirmFunc {
	if !isInteractive() {
		logger.Warn("--confirm ignored: not an interactive terminal")
		return nil
	}

	prompter := newPrompter(cfg.Theme)
	return func(ctx context.Context, path, from, to string) (bool, error) {
		return prompter.Confirm(ctx,
			fmt.Sprintf("Update %s?", path),
			tui.VersionChangeDescription(from, to))
	}
}
