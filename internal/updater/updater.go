package updater

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/indaco/update-plist/internal/core"
	"github.com/indaco/update-plist/internal/plistfile"
)

const (
	// DefaultBuildVersionKey holds the internal build identifier.
	DefaultBuildVersionKey = "CFBundleVersion"

	// DefaultDisplayVersionKey holds the user facing version string.
	DefaultDisplayVersionKey = "CFBundleShortVersionString"
)

// ErrCancelled is the cause recorded when a confirmation is declined.
var ErrCancelled = errors.New("update cancelled")

// ConfirmFunc is asked before the file is written. Returning false abandons the update.
type ConfirmFunc func(ctx context.Context, path, from, to string) (bool, error)

// Updater sets the version keys of property list files.
type Updater struct {
	fs       core.FileSystem
	reporter Reporter
	logger   *log.Logger

	buildVersionKey   string
	displayVersionKey string
	buildKey          string
	outputFormat      plistfile.Format
	dryRun            bool
	confirm           ConfirmFunc
}

// Option configures an Updater.
type Option func(*Updater)

// WithReporter replaces the default text reporter.
func WithReporter(r Reporter) Option {
	return func(u *Updater) { u.reporter = r }
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(u *Updater) { u.logger = l }
}

// WithKeys overrides the build version and display version keys.
// Empty values keep the defaults.
func WithKeys(buildVersionKey, displayVersionKey string) Option {
	return func(u *Updater) {
		if buildVersionKey != "" {
			u.buildVersionKey = buildVersionKey
		}
		if displayVersionKey != "" {
			u.displayVersionKey = displayVersionKey
		}
	}
}

// WithBuildKey makes UpdateVersion also store the build argument under key.
func WithBuildKey(key string) Option {
	return func(u *Updater) { u.buildKey = key }
}

// WithOutputFormat forces the serialization used when writing.
func WithOutputFormat(f plistfile.Format) Option {
	return func(u *Updater) { u.outputFormat = f }
}

// WithDryRun skips the write step.
func WithDryRun(dryRun bool) Option {
	return func(u *Updater) { u.dryRun = dryRun }
}

// WithConfirm installs a confirmation hook run before writing.
func WithConfirm(fn ConfirmFunc) Option {
	return func(u *Updater) { u.confirm = fn }
}

// New creates an Updater. Without options it reports to stdout, logs nothing
// and writes the two standard bundle version keys.
func New(fs core.FileSystem, opts ...Option) *Updater {
	u := &Updater{
		fs:                fs,
		reporter:          NewTextReporter(os.Stdout),
		logger:            log.New(io.Discard),
		buildVersionKey:   DefaultBuildVersionKey,
		displayVersionKey: DefaultDisplayVersionKey,
		outputFormat:      plistfile.FormatPreserve,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UpdateVersion sets both version keys of the property list at path to
// version and reports the outcome. The build argument is only stored when a
// build key has been configured.
func (u *Updater) UpdateVersion(ctx context.Context, path, version, build string) Result {
	res := Result{Path: path, Version: version, Build: build, DryRun: u.dryRun}

	if err := u.apply(ctx, &res); err != nil {
		res.Err = newOperationFailed(path, err)
		u.logger.Debug("update failed", "path", path, "err", err)
	}

	if err := u.reporter.Report(res); err != nil {
		u.logger.Warn("could not report result", "path", path, "err", err)
	}

	return res
}

func (u *Updater) apply(ctx context.Context, res *Result) error {
	doc, err := plistfile.Load(ctx, u.fs, res.Path)
	if err != nil {
		return err
	}
	res.Format = doc.Format
	res.Previous, _ = doc.String(u.displayVersionKey)

	u.logger.Debug("loaded property list",
		"path", res.Path, "format", doc.Format, "keys", doc.Len(), "previous", res.Previous)

	doc.Set(u.buildVersionKey, res.Version)
	doc.Set(u.displayVersionKey, res.Version)
	if u.buildKey != "" {
		doc.Set(u.buildKey, res.Build)
	}

	if u.dryRun {
		u.logger.Debug("dry run, skipping write", "path", res.Path)
		return nil
	}

	if u.confirm != nil {
		ok, err := u.confirm(ctx, res.Path, res.Previous, res.Version)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCancelled
		}
	}

	if u.outputFormat != "" && u.outputFormat != plistfile.FormatPreserve {
		res.Format = u.outputFormat
	}

	if err := plistfile.Save(ctx, u.fs, res.Path, doc, res.Format); err != nil {
		return err
	}

	u.logger.Debug("wrote property list", "path", res.Path, "format", res.Format)
	return nil
}
