package retroui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// errStopped signals a clean quit out of the step loop.
var errStopped = errors.New("retroui: stopped")

// Run drives the event loop until a quit event is consumed or the
// context is canceled. One goroutine pumps events out of the source; the
// other runs Step for each event, so every mutation of the view tree,
// focus, and buffer happens on a single goroutine. The blocking read
// inside the source is the loop's only suspension point.
func (a *App) Run(ctx context.Context, src EventSource) error {
	// Paint the initial frame before the first event arrives.
	a.paint()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan Event)

	g.Go(func() error {
		for {
			ev, err := src.Next()
			if err != nil {
				if ctx.Err() != nil {
					return nil // unblocked by shutdown
				}
				if errors.Is(err, io.EOF) {
					// Source closed: stop the loop cleanly.
					return errStopped
				}
				return fmt.Errorf("reading input: %w", err)
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// Closing the source on the way out unblocks the pump's
		// pending Next call.
		defer src.Close()
		for {
			select {
			case ev := <-events:
				if !a.Step(ev) {
					return errStopped
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errStopped) {
		return nil
	}
	return err
}
