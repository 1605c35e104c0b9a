package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/rules"

	"github.com/urfave/cli/v3"
)

// parseChannels converts "channel:target" flag values into channel inputs.
// Only the first colon separates the channel, so targets may contain colons.
func parseChannels(values []string) ([]rules.ChannelInput, error) {
	channels := make([]rules.ChannelInput, 0, len(values))
	for _, v := range values {
		channel, target, ok := strings.Cut(v, ":")
		if !ok || target == "" {
			return nil, fmt.Errorf("invalid channel %q, expected channel:target", v)
		}
		channels = append(channels, rules.ChannelInput{
			Channel: notification.Channel(channel),
			Target:  target,
		})
	}
	return channels, nil
}

// withRules builds the rule service for the duration of fn.
func withRules(ctx context.Context, svc Services, fn func(rules.Service) error) error {
	rs, closeFn, err := svc.Rules(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(rs)
}

func printRules(w io.Writer, rs []notification.Rule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNETWORK\tTYPE\tPERIOD\tVALIDATORS\tCHANNELS")

	for _, r := range rs {
		validators := "*"
		if !r.IsGlobal() {
			validators = strings.Join(r.Validators, ",")
		}

		channels := make([]string, 0, len(r.Channels))
		for _, ch := range r.Channels {
			channels = append(channels, string(ch.Channel)+":"+ch.Target)
		}

		period := string(r.PeriodType)
		if r.PeriodType != notification.PeriodImmediate {
			period = fmt.Sprintf("%dx%s", r.Period, r.PeriodType)
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Network, r.TypeCode, period, validators, strings.Join(channels, ","))
	}

	return tw.Flush()
}

// ruleCommand groups the rule management subcommands.
func ruleCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "rule",
		Description: "Manage the notification rules of a user.",
		Usage:       "Adds, removes and lists notification rules.",
		Commands: []*cli.Command{
			addRuleCommand(svc),
			removeRuleCommand(svc),
			listRulesCommand(svc),
		},
	}
}

// addRuleCommand returns a CLI command that subscribes a user to a type code.
//
// Usage example:
//
//	valwatch rule add --user 1 --network kusama --type chain_validator_chilled \
//	  --validator HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F --channel telegram:12345
func addRuleCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "add",
		Description: "Create a notification rule. Omitting --validator creates a rule matching every validator.",
		Usage:       "Creates a rule and prints its id.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "user",
				Usage:    "Owner user id",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "network",
				Usage:    "Network name (e.g., polkadot, kusama)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "type",
				Usage:    "Notification type code (e.g., chain_validator_chilled)",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "validator",
				Usage: "Validator account, hex or SS58 (repeatable)",
			},
			&cli.StringFlag{
				Name:  "period-type",
				Usage: "Delivery period: immediate, hour or day",
				Value: string(notification.PeriodImmediate),
			},
			&cli.Uint64Flag{
				Name:  "period",
				Usage: "Deliver every N hours or days",
				Value: 1,
			},
			&cli.StringSliceFlag{
				Name:     "channel",
				Usage:    "Delivery endpoint as channel:target (repeatable)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			channels, err := parseChannels(c.StringSlice("channel"))
			if err != nil {
				return err
			}

			in := rules.RuleInput{
				UserID:     c.Uint64("user"),
				Network:    c.String("network"),
				TypeCode:   notification.TypeCode(c.String("type")),
				Validators: c.StringSlice("validator"),
				PeriodType: notification.PeriodType(c.String("period-type")),
				Period:     uint16(min(c.Uint64("period"), 1<<16-1)),
				Channels:   channels,
			}

			return withRules(ctx, svc, func(rs rules.Service) error {
				rule, err := rs.AddRule(ctx, in)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(c.Root().Writer, "rule %d created\n", rule.ID)
				return err
			})
		},
	}
}

// removeRuleCommand returns a CLI command that deletes a rule of a user.
//
// Usage example:
//
//	valwatch rule remove --user 1 --id 42
func removeRuleCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "remove",
		Description: "Delete a notification rule. Notifications already recorded for it are still delivered.",
		Usage:       "Deletes a rule by id.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "user",
				Usage:    "Owner user id",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "id",
				Usage:    "Rule id",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return withRules(ctx, svc, func(rs rules.Service) error {
				return rs.RemoveRule(ctx, c.Uint64("user"), c.Uint64("id"))
			})
		},
	}
}

// listRulesCommand returns a CLI command that prints the rules of a user.
//
// Usage example:
//
//	valwatch rule list --user 1
func listRulesCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the notification rules of a user.",
		Usage:       "Prints one rule per line.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "user",
				Usage:    "Owner user id",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return withRules(ctx, svc, func(rs rules.Service) error {
				found, err := rs.ListRules(ctx, c.Uint64("user"))
				if err != nil {
					return err
				}
				return printRules(c.Root().Writer, found)
			})
		},
	}
}
