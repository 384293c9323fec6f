package command

import (
	"fmt"
	"time"

	"webtoonhub/cmd/cli/authentication"
	"webtoonhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// auth.go handles login, register and logout.

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the webtoonhub API server. Supports login, registration, logout.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.RegisterRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Name, _ = cmd.Flags().GetString("name")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Register(&req)
		if err != nil {
			return fmt.Errorf("registration process failed: %w", err)
		}

		fmt.Println("✓ Registration successful! Please login to continue.")
		fmt.Printf("MemberID: %d\n", response.MemberID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Login(&req)
		if err != nil {
			return fmt.Errorf("login process failed: %w", err)
		}

		creds := &authentication.StoredCredentials{
			AccessToken: response.AccessToken,
			MemberID:    response.MemberID,
			Username:    response.Username,
			Role:        response.Role,
			ExpiresAt:   time.Now().Add(time.Duration(response.ExpiresIn) * time.Second).Unix(),
		}
		if err := authentication.StoreTokens(creds); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}

		fmt.Println("✓ Successfully logged in!")
		fmt.Printf("MemberID: %d | Role: %s\n", response.MemberID, response.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Println("✓ Successfully logged out.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)

	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email for the new account")
	registerCmd.Flags().StringP("name", "n", "", "Display name")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("email")

	loginCmd.Flags().StringP("username", "u", "", "Username")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}
