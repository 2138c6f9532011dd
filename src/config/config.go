package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/jomei/notionapi"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sawantshivaji1997/vaultsync/src/logging"
	"github.com/sawantshivaji1997/vaultsync/src/markdown"
	"github.com/sawantshivaji1997/vaultsync/src/notionclient"
	"github.com/sawantshivaji1997/vaultsync/src/publisher"
	"github.com/sawantshivaji1997/vaultsync/src/syncer"
	"github.com/sawantshivaji1997/vaultsync/src/utils"
	"github.com/sawantshivaji1997/vaultsync/src/vault"
)

type OperationType string

const (
	UNKNOWN OperationType = "UNKNOWN"
	SYNC    OperationType = "SYNC"
	CHECK   OperationType = "CHECK"
	PREVIEW OperationType = "PREVIEW"
)

type Config struct {
	Token          string
	DatabaseID     string
	VaultPath      string
	Filter         string
	DryRun         bool
	Operation_Type OperationType
	PreviewFile    string
	Out            io.Writer
	NotionClient   notionclient.NotionClient
	Reader         vault.Reader
}

type ConfigOption func(context.Context, *Config)

var errInvalidUUID = errors.New("must be a valid UUID")

func isUUID(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return errInvalidUUID
	}
	return nil
}

func isDir(value interface{}) error {
	s, _ := value.(string)
	return utils.CheckIfDirExists(s)
}

func isFile(value interface{}) error {
	s, _ := value.(string)
	if !utils.FileExists(s) {
		return errors.Errorf("file %s does not exist", s)
	}
	return nil
}

// Fill in defaults that depend on the environment. Any accepted database id
// form (braces, urn prefix, no dashes) is rewritten to the dashed one.
func (c *Config) normalize() error {
	if id, err := uuid.Parse(c.DatabaseID); err == nil {
		c.DatabaseID = id.String()
	}

	if c.Operation_Type != SYNC {
		return nil
	}

	if c.VaultPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get working directory")
		}
		c.VaultPath = cwd
	}

	vaultPath, err := filepath.Abs(c.VaultPath)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve vault path %s", c.VaultPath)
	}
	c.VaultPath = vaultPath
	return nil
}

// Validate checks the fields the configured operation needs. A dry run sync
// never talks to Notion, so it needs neither token nor database.
func (c *Config) Validate() error {
	needsNotion := c.Operation_Type == CHECK ||
		(c.Operation_Type == SYNC && !c.DryRun)

	switch c.Operation_Type {
	case SYNC, CHECK:
		return validation.ValidateStruct(c,
			validation.Field(&c.Token,
				validation.When(needsNotion, validation.Required)),
			validation.Field(&c.DatabaseID,
				validation.When(needsNotion, validation.Required),
				validation.By(isUUID)),
			validation.Field(&c.VaultPath,
				validation.When(c.Operation_Type == SYNC, validation.By(isDir))),
		)
	case PREVIEW:
		return validation.ValidateStruct(c,
			validation.Field(&c.PreviewFile, validation.Required,
				validation.By(isFile)),
		)
	}

	return errors.Errorf("unknown operation type provided: %s", c.Operation_Type)
}

// Initialize creates whatever collaborators were not injected
func Initialize(ctx context.Context, c *Config) {
	if c.Out == nil {
		c.Out = os.Stdout
	}

	if c.NotionClient == nil && c.Token != "" {
		c.NotionClient = notionclient.GetNotionApiClient(ctx,
			notionclient.Token(c.Token), notionapi.NewClient)
	}
}

func (c *Config) getReader() (vault.Reader, error) {
	if c.Reader != nil {
		return c.Reader, nil
	}
	return vault.GetFileReader(c.VaultPath)
}

func (c *Config) executeSync(ctx context.Context) error {
	log := zerolog.Ctx(ctx)

	reader, err := c.getReader()
	if err != nil {
		return err
	}

	pub := publisher.GetPublisher(c.NotionClient,
		notionclient.DatabaseID(c.DatabaseID))

	if !c.DryRun {
		if _, err := pub.Preflight(ctx); err != nil {
			log.Error().Err(err).Msg(logging.DatabaseFetchErr)
			return err
		}
	}

	report, err := syncer.GetSyncer(reader, markdown.NewTranslator(nil), pub,
		syncer.WithFilter(c.Filter), syncer.WithDryRun(c.DryRun)).Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg(logging.DiscoveryErr)
		return err
	}

	for _, outcome := range report.Outcomes {
		if outcome.Status == syncer.FAILED {
			fmt.Fprintf(c.Out, "FAILED    %s: %v\n", outcome.Path, outcome.Err)
		}
	}
	fmt.Fprintf(c.Out, "%d published, %d failed, %d skipped\n",
		report.Published(), report.Failed(), report.Skipped())
	return nil
}

func (c *Config) executeCheck(ctx context.Context) error {
	log := zerolog.Ctx(ctx)

	database, err := publisher.GetPublisher(c.NotionClient,
		notionclient.DatabaseID(c.DatabaseID)).Preflight(ctx)
	if err != nil {
		log.Error().Err(err).Msg(logging.DatabaseFetchErr)
		return err
	}

	title := ""
	for _, rt := range database.Title {
		title += rt.PlainText
	}

	names := make([]string, 0, len(database.Properties))
	for name := range database.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(c.Out, "Connected to database %q (%s)\n", title, database.ID)
	for _, name := range names {
		fmt.Fprintf(c.Out, "  %s: %s\n", name,
			database.Properties[name].GetType())
	}

	if !publisher.HasTitleProperty(database) {
		fmt.Fprintf(c.Out, "WARNING: no %s property named %q, pages cannot "+
			"be created until one of the columns above is renamed\n",
			publisher.TITLE_PROPERTY_TYPE, publisher.TITLE_PROPERTY)
	}
	return nil
}

func (c *Config) executePreview(ctx context.Context) error {
	doc, err := vault.ReadDocument(c.PreviewFile)
	if err != nil {
		return err
	}

	result := markdown.NewTranslator(nil).Translate(doc)
	for _, image := range result.UnresolvedImages() {
		zerolog.Ctx(ctx).Warn().Str(logging.FilePath, doc.Path).
			Str(logging.ImageName, image.Name).Msg(logging.ImageNotFound)
	}

	data, err := json.MarshalIndent(publisher.ToNotionBlocks(result.Blocks), "",
		"  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode blocks")
	}

	fmt.Fprintf(c.Out, "%s\n", data)
	return nil
}

func (c *Config) Execute(ctx context.Context, opts ...ConfigOption) error {
	log := zerolog.Ctx(ctx)

	if err := c.normalize(); err != nil {
		log.Error().Err(err).Msg(logging.ValidationErr)
		return err
	}

	if err := c.Validate(); err != nil {
		log.Error().Err(err).Msg(logging.ValidationErr)
		return err
	}

	for _, opt := range opts {
		opt(ctx, c)
	}
	Initialize(ctx, c)

	log.Debug().Str(logging.Token, utils.MaskToken(c.Token)).
		Str(logging.DatabaseID, c.DatabaseID).
		Str(logging.VaultPath, c.VaultPath).Msg("Configuration loaded")

	switch c.Operation_Type {
	case SYNC:
		log.Info().Str(logging.VaultPath, c.VaultPath).
			Bool(logging.DryRun, c.DryRun).Msg("Starting sync operation")
		return c.executeSync(ctx)
	case CHECK:
		log.Info().Str(logging.DatabaseID, c.DatabaseID).
			Msg("Checking database connection")
		return c.executeCheck(ctx)
	default:
		return c.executePreview(ctx)
	}
}
