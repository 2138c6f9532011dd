package cmd

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var notionToken string
var databaseID string
var logLevel string

// rootCmd represents the base command when called without any subcommands.
// On its own it behaves like the sync command, which is what CI runs.
var rootCmd = &cobra.Command{
	Use:   "vaultsync",
	Short: "A tool to publish an Obsidian vault to a Notion database",
	Long: "Vault Sync walks an Obsidian vault, translates every markdown note " +
		"into Notion blocks and creates one page per note in a Notion database.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         Sync,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
// It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&notionToken, "token", "",
		"Notion integration token used to create pages. Alternatively, one can "+
			"set it as environment variable 'NOTION_TOKEN'.")
	rootCmd.PersistentFlags().StringVar(&databaseID, "database", "",
		"UUID of the Notion database pages are created in. Alternatively, one "+
			"can set it as environment variable 'NOTION_DATABASE_ID'.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Level of logging. (Log levels: info, debug, trace)")

	addSyncFlags(rootCmd)
}

// initConfig reads in the .env file and ENV variables if set.
func initConfig() {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	viper.SetEnvPrefix("notion")
	viper.AutomaticEnv()
	_ = viper.BindEnv("vault", "VAULT_PATH", "GITHUB_WORKSPACE")
}

// Flags take precedence over the environment
func loadCredentials() {
	if notionToken == "" {
		notionToken = viper.GetString("token")
	}
	if databaseID == "" {
		databaseID = viper.GetString("database_id")
	}
}

type timeHook struct{}

func (t timeHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time("time", time.Now())
}

func getLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return zerolog.Logger{}, errors.Wrapf(err, "Couldn't parse log level")
	}

	out := os.Stderr
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC822,
	}

	if !term.IsTerminal(int(out.Fd())) {
		writer.NoColor = true
	}
	log := zerolog.New(writer).
		Hook(timeHook{}).
		Level(level)

	return log, nil
}
