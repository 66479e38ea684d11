package main

import (
	"context"

	"github.com/raphi011/sweep/internal/output"
	"github.com/raphi011/sweep/internal/status"
	"github.com/raphi011/sweep/internal/ui/styles"
)

// runStatus collects one snapshot of the repository at dir and renders
// it to stdout.
func runStatus(ctx context.Context, dir string) error {
	snap, err := status.Collect(ctx, status.GitQueries{Dir: dir}, cfg.GraphLimit)
	if err != nil {
		return err
	}

	out := output.FromContext(ctx)
	renderer := status.NewRenderer(styles.ByName(cfg.Theme))
	renderer.Render(out.Writer(), snap)
	return nil
}
