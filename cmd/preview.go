package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sawantshivaji1997/vaultsync/src/config"
	"github.com/spf13/cobra"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Print the Notion blocks a note translates to",
	Long: "Translate a single markdown note and print the JSON of the block " +
		"children that would be sent to Notion. Nothing is sent.",
	Args: cobra.ExactArgs(1),
	RunE: Preview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func Preview(cmd *cobra.Command, args []string) error {
	log, err := getLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}

	cfg := &config.Config{
		Operation_Type: config.PREVIEW,
		PreviewFile:    args[0],
		Out:            cmd.OutOrStdout(),
	}

	ctx := log.WithContext(context.Background())

	return cfg.Execute(ctx)
}
