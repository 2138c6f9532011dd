package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sawantshivaji1997/vaultsync/src/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var vaultPath string
var filter string
var dryRun bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create a Notion page for every note of the vault",
	Long: "Walk the vault, translate every markdown note and create one page " +
		"per note in the Notion database. Notes that fail are reported and " +
		"skipped, the remaining notes are still published.",
	Args: cobra.NoArgs,
	RunE: Sync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	addSyncFlags(syncCmd)
}

func addSyncFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&vaultPath, "vault", "v", "",
		"vault directory. Defaults to $VAULT_PATH, then $GITHUB_WORKSPACE, "+
			"then the current directory")
	cmd.MarkFlagDirname("vault")
	cmd.Flags().StringVarP(&filter, "filter", "f", "",
		"only sync notes whose vault relative path contains this text")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"translate the notes without creating any page")
}

func Sync(cmd *cobra.Command, args []string) error {
	loadCredentials()
	if vaultPath == "" {
		vaultPath = viper.GetString("vault")
	}

	log, err := getLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}

	cfg := &config.Config{
		Token:          notionToken,
		DatabaseID:     databaseID,
		VaultPath:      vaultPath,
		Filter:         filter,
		DryRun:         dryRun,
		Operation_Type: config.SYNC,
		Out:            cmd.OutOrStdout(),
	}

	ctx := log.WithContext(context.Background())

	return cfg.Execute(ctx)
}
