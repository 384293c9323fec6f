package command

import (
	"fmt"
	"strings"

	"webtoonhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Episode comment commands",
	Long:  `Read episode comment threads, post comments and replies, and report comments`,
}

var listCommentsCmd = &cobra.Command{
	Use:   "list [episode-id]",
	Short: "Show the comment threads of an episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		episodeID, err := parseID(args[0], "episode")
		if err != nil {
			return err
		}

		httpClient := client.NewHTTPClient(apiURL)
		threads, err := httpClient.ListComments(episodeID)
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}

		if len(threads) == 0 {
			fmt.Println("No comments yet.")
			return nil
		}
		for _, t := range threads {
			fmt.Printf("[%d] %s: %s\n", t.ID, t.Username, t.Content)
			for _, r := range t.Replies {
				fmt.Printf("    ↳ [%d] %s: %s\n", r.ID, r.Username, r.Content)
			}
		}
		return nil
	},
}

var createCommentCmd = &cobra.Command{
	Use:   "create [episode-id] [content]",
	Short: "Comment on an episode",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		episodeID, err := parseID(args[0], "episode")
		if err != nil {
			return err
		}
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		id, err := httpClient.CreateComment(episodeID, strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		fmt.Printf("✓ Comment %d created.\n", id)
		return nil
	},
}

var replyCommentCmd = &cobra.Command{
	Use:   "reply [comment-id] [content]",
	Short: "Reply to a comment",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parentID, err := parseID(args[0], "comment")
		if err != nil {
			return err
		}
		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		id, err := httpClient.ReplyComment(parentID, strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("failed to reply: %w", err)
		}
		fmt.Printf("✓ Reply %d created.\n", id)
		return nil
	},
}

var reportCommentCmd = &cobra.Command{
	Use:   "report [comment-id]",
	Short: "Report a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentID, err := parseID(args[0], "comment")
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		detail, _ := cmd.Flags().GetString("detail")

		httpClient, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		result, err := httpClient.ReportComment(commentID, reason, detail)
		if err != nil {
			return fmt.Errorf("failed to report comment: %w", err)
		}
		fmt.Printf("✓ Report %s.\n", result)
		return nil
	},
}

func init() {
	commentCmd.AddCommand(listCommentsCmd)
	commentCmd.AddCommand(createCommentCmd)
	commentCmd.AddCommand(replyCommentCmd)
	commentCmd.AddCommand(reportCommentCmd)

	reportCommentCmd.Flags().StringP("reason", "r", "", "Report reason")
	reportCommentCmd.Flags().StringP("detail", "d", "", "Optional detail")
	reportCommentCmd.MarkFlagRequired("reason")
}
