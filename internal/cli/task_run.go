package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/tender/internal/cli/formatter"
	"github.com/alexanderramin/tender/internal/progress"
)

// runTask drives a simulated task to completion for a CLI command. When
// live is set the progress line is redrawn in place and a spinner covers
// the processing phase; otherwise one line is printed per phase.
func runTask(ctx context.Context, out io.Writer, task progress.Task, live bool) error {
	var spin *formatter.Spinner
	var last progress.Phase
	stopSpin := func() {
		if spin != nil {
			spin.Stop()
			spin = nil
		}
	}

	err := progress.Run(ctx, task, func(s progress.Snapshot) {
		defer func() { last = s.Phase }()
		if s.Done() {
			stopSpin()
			if live {
				fmt.Fprint(out, "\r\033[K")
			}
			fmt.Fprintln(out, "  "+formatter.FormatTask(s, 30))
			return
		}
		if s.Phase == progress.PhaseProcessing {
			if live && spin == nil {
				fmt.Fprint(out, "\r\033[K")
				spin = formatter.NewSpinner(out, "Processing document…")
				spin.Start()
			}
			if !live && s.Phase != last {
				fmt.Fprintln(out, "  "+formatter.FormatTask(s, 30))
			}
			return
		}
		if live {
			fmt.Fprint(out, "\r  "+formatter.FormatTask(s, 30))
		} else if s.Phase != last {
			fmt.Fprintln(out, "  "+formatter.FormatTask(s, 30))
		}
	})
	stopSpin()
	return err
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
