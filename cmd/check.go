package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sawantshivaji1997/vaultsync/src/config"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection to the Notion database",
	Long: "Fetch the Notion database with the configured token and print its " +
		"title and properties. Fails when the database has no 'Name' title " +
		"property.",
	Args: cobra.NoArgs,
	RunE: Check,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func Check(cmd *cobra.Command, args []string) error {
	loadCredentials()

	log, err := getLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}

	cfg := &config.Config{
		Token:          notionToken,
		DatabaseID:     databaseID,
		Operation_Type: config.CHECK,
		Out:            cmd.OutOrStdout(),
	}

	ctx := log.WithContext(context.Background())

	return cfg.Execute(ctx)
}
