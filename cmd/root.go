// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"ghactivity/internal/gateway"
	"ghactivity/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "gh-activity <username>",
	Short: "A CLI tool to display a GitHub user's recent activity.",
	Long: `gh-activity fetches the recent public activity of a GitHub user
and prints it as a short human-readable list, one line per event.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		username := args[0]

		// Set up the logger from the verbose flag.
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		service := usecase.NewService(githubGateway, logger)

		lines, err := service.ActivityLines(ctx, username)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorMessage(err))
			os.Exit(1)
		}

		if len(lines) == 0 {
			fmt.Println("No recent activity found.")
			return
		}
		for _, line := range lines {
			fmt.Println(line)
		}
	},
}

// errorMessage maps a gateway failure onto the one-line message shown to the user.
func errorMessage(err error) string {
	var notFoundErr *gateway.UserNotFoundError
	if errors.As(err, &notFoundErr) {
		return fmt.Sprintf("Error: User '%s' not found", notFoundErr.Username)
	}
	var rateErr *gateway.RateLimitError
	if errors.As(err, &rateErr) {
		return "Error: API rate limit exceeded. Please try again later"
	}
	var netErr *gateway.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("Connection Error: Network error: %v", netErr.Err)
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error: HTTP error %d: %s", apiErr.StatusCode, apiErr.Snippet)
	}
	var parseErr *gateway.ParseError
	if errors.As(err, &parseErr) {
		return "Error: Invalid response from GitHub API"
	}
	return fmt.Sprintf("Error: %v", err)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
