package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mindful/internal/amqp"
	"mindful/internal/cli"
	"mindful/internal/kv"
	"mindful/internal/log"
)

const watchShutdownTimeout = 5 * time.Second

var errFeedDisabled = errors.New("change feed disabled: set AMQP_URL")

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow changes made by other processes sharing the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier := a.session.Notifier
			if notifier == nil {
				return errFeedDisabled
			}

			logger := log.FromContext(cmd.Context()).WithComponent(log.ComponentAMQP)
			ctx, done := cli.GracefulShutdown(logger, watchShutdownTimeout, nil)
			out := cmd.OutOrStdout()

			logger.Info("Watching journal changes", "queue", a.cfg.AMQPQueue)
			err := notifier.ConsumeChanges(ctx, func(msg *amqp.ChangeMessage) error {
				if inv, ok := a.session.Store.(kv.Invalidator); ok {
					inv.Invalidate(msg.Key)
				}
				if err := a.journal().Refresh(ctx); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s %s\n", msg.Timestamp.Format(time.RFC3339), msg.Op, msg.Field)
				return nil
			})
			if errors.Is(err, context.Canceled) {
				cli.WaitForShutdown(ctx, done)
				return nil
			}
			return err
		},
	}
}
