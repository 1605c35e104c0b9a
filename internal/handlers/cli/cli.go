package cli

import (
	"context"
	"os"
	"time"

	"github.com/gabapcia/valwatch/internal/generator"
	"github.com/gabapcia/valwatch/internal/rules"
	"github.com/gabapcia/valwatch/internal/scheduler"

	"github.com/urfave/cli/v3"
)

// Services builds the services behind the commands. Each builder is only
// invoked by the command that needs it, so a command never connects to
// infrastructure it does not use. The returned func releases the resources
// of the built service.
type Services struct {
	// RestartDelay is the wait between a crash of a long-running service and
	// its restart.
	RestartDelay time.Duration

	Generator func(ctx context.Context) (generator.Service, func(), error)
	Scheduler func(ctx context.Context) (scheduler.Service, func(), error)
	Rules     func(ctx context.Context) (rules.Service, func(), error)
}

// Run initializes and executes the valwatch CLI application.
//
// It registers all available commands:
//
//   - `generate`: Runs the change detection loop of a network.
//   - `process`: Runs the notification delivery loops.
//   - `rule add|remove|list`: Manages notification rules.
func Run(ctx context.Context, svc Services) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "valwatch",
		Description:           "Validator monitoring and multi-channel notification pipeline.",
		Usage:                 "valwatch [command] [flags]",
		Commands: []*cli.Command{
			generateCommand(svc),
			processCommand(svc),
			ruleCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}
