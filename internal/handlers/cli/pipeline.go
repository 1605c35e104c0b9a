package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/valwatch/internal/pkg/supervisor"

	"github.com/urfave/cli/v3"
)

// untilSignal returns a copy of ctx canceled on SIGINT or SIGTERM.
func untilSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// generateCommand returns a CLI command that runs the generator: it follows
// finalized heights, diffs the validator set and turns the detected changes
// into notification rows.
//
// Usage example:
//
//	valwatch generate
//
// The loop is restarted after a crash and runs until it receives an
// interrupt (SIGINT or SIGTERM).
func generateCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Description: "Follows finalized heights and records a notification for every matching validator change.",
		Usage:       "Runs the change detection loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := untilSignal(ctx)
			defer stop()

			gen, closeFn, err := svc.Generator(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			return supervisor.Run(ctx, "generator", svc.RestartDelay, gen.Run)
		},
	}
}

// processCommand returns a CLI command that runs the scheduler: immediate
// notifications are sent as they appear and periodic ones are grouped at
// hour and day boundaries.
//
// Usage example:
//
//	valwatch process
func processCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "process",
		Description: "Delivers pending notifications through their channels.",
		Usage:       "Runs the immediate and periodic delivery loops. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := untilSignal(ctx)
			defer stop()

			sched, closeFn, err := svc.Scheduler(ctx)
			if err != nil {
				return err
			}
			defer closeFn()
			defer sched.Close()

			return supervisor.Run(ctx, "scheduler", svc.RestartDelay, sched.Start)
		},
	}
}
