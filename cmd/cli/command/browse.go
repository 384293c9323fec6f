package command

import (
	"fmt"

	"webtoonhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var rankingCmd = &cobra.Command{
	Use:   "ranking [daily|weekly|monthly|yearly|all] [genre]",
	Short: "Show the view ranking for a period",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		genre := ""
		if len(args) == 2 {
			genre = args[1]
		}
		limit, _ := cmd.Flags().GetInt("limit")

		httpClient := client.NewHTTPClient(apiURL)
		items, err := httpClient.GetRanking(args[0], genre, limit)
		if err != nil {
			return fmt.Errorf("failed to get ranking: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No ranked webtoons.")
			return nil
		}
		for _, it := range items {
			fmt.Printf("#%-3d %-40s %-12s %d views\n", it.Rank, it.Name, it.Genre, it.Views)
		}
		return nil
	},
}

var webtoonCmd = &cobra.Command{
	Use:   "webtoon",
	Short: "Browse webtoons",
}

var listWebtoonsCmd = &cobra.Command{
	Use:   "list",
	Short: "List webtoons",
	RunE: func(cmd *cobra.Command, args []string) error {
		genre, _ := cmd.Flags().GetString("genre")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		httpClient := client.NewHTTPClient(apiURL)
		result, err := httpClient.ListWebtoons(genre, page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list webtoons: %w", err)
		}

		if len(result.Data) == 0 {
			fmt.Println("No webtoons found.")
			return nil
		}
		fmt.Printf("Webtoons (page %d/%d, %d total):\n\n", result.Pagination.Page, result.Pagination.TotalPages, result.Pagination.Total)
		for _, w := range result.Data {
			status := ""
			if w.Discontinued {
				status = " [discontinued]"
			}
			fmt.Printf("ID: %d | %s (%s) | %d views | %d recommends%s\n", w.ID, w.Name, w.Genre, w.Views, w.Recommend, status)
		}
		return nil
	},
}

var recommendWebtoonCmd = &cobra.Command{
	Use:   "recommend [webtoon-id]",
	Short: "Recommend a webtoon",
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
		if err := httpClient.RecommendWebtoon(webtoonID); err != nil {
			return fmt.Errorf("failed to recommend: %w", err)
		}
		fmt.Println("✓ Recommended!")
		return nil
	},
}

var adCmd = &cobra.Command{
	Use:   "ad [placement]",
	Short: "Show the advertisement currently served for a placement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		ad, err := httpClient.SelectAd(args[0])
		if err != nil {
			return fmt.Errorf("failed to select ad: %w", err)
		}
		if ad == nil {
			fmt.Printf("No advertisement eligible for %q.\n", args[0])
			return nil
		}
		fmt.Printf("ID: %d | %s\n", ad.ID, ad.Name)
		fmt.Printf("Image: %s\nTarget: %s\n", ad.ImageURL, ad.TargetURL)
		fmt.Printf("Exposures: %d\n", ad.CurrentExposureCount)

		if record, _ := cmd.Flags().GetBool("record-view"); record {
			authed, err := GetAuthenticatedClient()
			if err != nil {
				return err
			}
			if err := authed.RecordAdView(ad.ID); err != nil {
				return fmt.Errorf("failed to record view: %w", err)
			}
			fmt.Println("✓ View recorded.")
		}
		return nil
	},
}

func init() {
	rankingCmd.Flags().Int("limit", 0, "Maximum number of entries (server default when 0)")

	webtoonCmd.AddCommand(listWebtoonsCmd)
	webtoonCmd.AddCommand(recommendWebtoonCmd)
	listWebtoonsCmd.Flags().String("genre", "", "Filter by genre")
	listWebtoonsCmd.Flags().Int("page", 1, "Page number")
	listWebtoonsCmd.Flags().Int("page-size", 20, "Number of webtoons per page")

	adCmd.Flags().Bool("record-view", false, "Record an exposure for the selected ad")
}
