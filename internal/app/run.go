package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/fragsplice/internal/ctxlog"
)

// ErrStale is returned in check mode when a target's generated regions do not
// match what a run would produce.
var ErrStale = errors.New("generated regions are out of date")

// Run processes every target in order. The first failure stops the run;
// targets processed before it keep their new content.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "check", a.config.Check)

	var stale []string
	for _, target := range a.config.Targets {
		changed, err := a.rewriter.ProcessFile(ctx, target, a.config.Check)
		if err != nil {
			return err
		}

		switch {
		case a.config.Check && changed:
			a.logger.Warn("Target file is out of date.", "file", target)
			stale = append(stale, target)
		case changed:
			a.logger.Info("Regenerated target file.", "file", target)
		default:
			a.logger.Info("Target file unchanged.", "file", target)
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
	}
	a.logger.Debug("App.Run method finished.", "targets", len(a.config.Targets))
	return nil
}
