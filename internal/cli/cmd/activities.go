package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariel-systems/ariel-bridge/common/messaging"
	natsclient "github.com/ariel-systems/ariel-bridge/common/messaging/nats"
)

var (
	activitiesLimit  int
	activitiesFollow bool
)

var activitiesCmd = &cobra.Command{
	Use:   "activities <domain>",
	Short: "Show the activity feed for a domain",
	Long: `Show the activity feed for a domain, newest first.

With --follow, subscribes to the broker and streams activity events as the
bridge appends them (requires NATS broadcasting enabled on the bridge).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if activitiesFollow {
			return followActivities(cmd, args[0])
		}

		target := args[0] + "/activities"
		if activitiesLimit > 0 {
			target = fmt.Sprintf("%s?limit=%d", target, activitiesLimit)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		raw, err := newClient().Get(ctx, target)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

func followActivities(cmd *cobra.Command, domain string) error {
	natsURL := "nats://localhost:4222"
	if profile, err := cfg.GetProfile(profileName); err == nil && profile.NATSURL != "" {
		natsURL = profile.NATSURL
	}

	natsCfg := natsclient.DefaultConfig()
	natsCfg.URL = natsURL
	natsCfg.Name = "arielctl"

	broker, err := natsclient.NewClient(natsCfg)
	if err != nil {
		return err
	}
	defer broker.Close()

	subject := messaging.ActivitySubject(domain)
	sub, err := broker.Subscribe(subject, func(_ context.Context, msg *messaging.Message) error {
		fmt.Println(string(msg.Data))
		return nil
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	fmt.Fprintf(cmd.ErrOrStderr(), "Following %s (ctrl-c to stop)\n", subject)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return nil
}

func init() {
	activitiesCmd.Flags().IntVar(&activitiesLimit, "limit", 0, "maximum number of records (0 = all)")
	activitiesCmd.Flags().BoolVar(&activitiesFollow, "follow", false, "stream new activity events from the broker")
	rootCmd.AddCommand(activitiesCmd)
}
