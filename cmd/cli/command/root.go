package command

// root.go defines the root command for the webtoonhub CLI and its global flags.

import (
	"fmt"
	"os"
	"strconv"

	"webtoonhub/cmd/cli/authentication"
	"webtoonhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webtoonhub",
	Short: "webtoonhub - Webtoon platform command line client",
	Long: `webtoonhub talks to the webtoon api-server. With it you can:
- Browse rankings and webtoons
- Read and post episode comments
- Manage your subscriptions and alarms
- Preview the ad served for a placement

Use "webtoonhub [command] --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("WEBTOONHUB_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(webtoonCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(subscriptionCmd)
	rootCmd.AddCommand(adCmd)
}

// GetAuthenticatedClient returns a client carrying the stored access token
func GetAuthenticatedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, err
	}
	httpClient := client.NewHTTPClient(apiURL)
	httpClient.SetToken(creds.AccessToken)
	return httpClient, nil
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %q", what, arg)
	}
	return id, nil
}
