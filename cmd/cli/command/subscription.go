package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var subscriptionCmd = &cobra.Command{
	Use:     "subscription",
	Aliases: []string{"sub"},
	Short:   "Manage webtoon subscriptions",
}

var subscribeCmd = &cobra.Command{
	Use:   "add [webtoon-id]",
	Short: "Subscribe to a webtoon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		webtoonID, err := parseID(args[0], "webtoon")
		if err != nil {
			return err
		}
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if err := httpClient.Subscribe(webtoonID); err != nil {
			return fmt.Errorf("failed to subscribe: %w", err)
		}
		fmt.Printf("✓ Subscribed to webtoon %d.\n", webtoonID)
		return nil
	},
}

var unsubscribeCmd = &cobra.Command{
	Use:   "remove [webtoon-id]",
	Short: "Unsubscribe from a webtoon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		webtoonID, err := parseID(args[0], "webtoon")
		if err != nil {
			return err
		}
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if err := httpClient.Unsubscribe(webtoonID); err != nil {
			return fmt.Errorf("failed to unsubscribe: %w", err)
		}
		fmt.Printf("✓ Unsubscribed from webtoon %d.\n", webtoonID)
		return nil
	},
}

var alarmCmd = &cobra.Command{
	Use:   "alarm [webtoon-id] [on|off]",
	Short: "Toggle new-episode alarms for a subscription",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		webtoonID, err := parseID(args[0], "webtoon")
		if err != nil {
			return err
		}
		var on bool
		switch args[1] {
		case "on":
			on = true
		case "off":
			on = false
		default:
			parsed, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("alarm state must be on or off, got %q", args[1])
			}
			on = parsed
		}

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if err := httpClient.SetAlarm(webtoonID, on); err != nil {
			return fmt.Errorf("failed to set alarm: %w", err)
		}
		fmt.Printf("✓ Alarm for webtoon %d is now %s.\n", webtoonID, args[1])
		return nil
	},
}

var listSubscriptionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List your subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		subs, err := httpClient.ListSubscriptions()
		if err != nil {
			return fmt.Errorf("failed to list subscriptions: %w", err)
		}
		if len(subs) == 0 {
			fmt.Println("No subscriptions.")
			return nil
		}
		for _, s := range subs {
			alarm := "off"
			if s.AlarmOn {
				alarm = "on"
			}
			fmt.Printf("Webtoon: %d | Status: %s | Alarm: %s\n", s.WebtoonID, s.Status, alarm)
		}
		return nil
	},
}

func init() {
	subscriptionCmd.AddCommand(subscribeCmd)
	subscriptionCmd.AddCommand(unsubscribeCmd)
	subscriptionCmd.AddCommand(alarmCmd)
	subscriptionCmd.AddCommand(listSubscriptionsCmd)
}
