package syncer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sawantshivaji1997/vaultsync/src/logging"
	"github.com/sawantshivaji1997/vaultsync/src/markdown"
	"github.com/sawantshivaji1997/vaultsync/src/publisher"
	"github.com/sawantshivaji1997/vaultsync/src/vault"
)

type Status string

const (
	PENDING   Status = "pending"
	PUBLISHED Status = "published"
	FAILED    Status = "failed"
	// Translated but not sent, used in dry runs
	SKIPPED Status = "skipped"
)

// Outcome of one markdown file
type Outcome struct {
	Path   string
	Title  string
	Blocks int
	Status Status
	PageID string
	Err    error
}

type Report struct {
	Outcomes []Outcome
}

func (r *Report) count(status Status) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}
	return n
}

func (r *Report) Published() int {
	return r.count(PUBLISHED)
}

func (r *Report) Failed() int {
	return r.count(FAILED)
}

func (r *Report) Skipped() int {
	return r.count(SKIPPED)
}

type Publisher interface {
	Publish(context.Context, string, []markdown.Block) publisher.Result
}

type Syncer struct {
	reader     vault.Reader
	translator *markdown.Translator
	publisher  Publisher
	filter     string
	dryRun     bool
}

type SyncerOption func(*Syncer)

// Only files whose vault relative path contains filter are synced
func WithFilter(filter string) SyncerOption {
	return func(s *Syncer) {
		s.filter = filter
	}
}

// Translate every file but do not publish anything
func WithDryRun(dryRun bool) SyncerOption {
	return func(s *Syncer) {
		s.dryRun = dryRun
	}
}

func GetSyncer(reader vault.Reader, translator *markdown.Translator,
	pub Publisher, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		reader:     reader,
		translator: translator,
		publisher:  pub,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run syncs every markdown file of the vault, one after the other. Only a
// failure to list the vault is returned as an error; problems with single
// files are logged and recorded in the report.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	log := zerolog.Ctx(ctx)

	files, err := s.reader.ListMarkdownFiles(ctx, s.filter)
	if err != nil {
		return nil, errors.Wrap(err, logging.DiscoveryErr)
	}

	log.Info().Int(logging.FileCount, len(files)).Str(logging.Filter, s.filter).
		Msg("Found markdown files")

	report := &Report{
		Outcomes: make([]Outcome, 0, len(files)),
	}

	for _, path := range files {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Outcomes = append(report.Outcomes, s.syncFile(ctx, path))
	}

	log.Info().
		Int(logging.PublishedCount, report.Published()).
		Int(logging.FailedCount, report.Failed()).
		Int(logging.SkippedCount, report.Skipped()).
		Msg("Sync completed")

	return report, nil
}

func (s *Syncer) syncFile(ctx context.Context, path string) Outcome {
	log := zerolog.Ctx(ctx).With().Str(logging.FilePath, path).Logger()
	outcome := Outcome{
		Path:   path,
		Status: PENDING,
	}

	doc, err := s.reader.ReadDocument(ctx, path)
	if err != nil {
		log.Error().Err(err).Msg(logging.FileReadErr)
		return failed(outcome, err)
	}

	result, err := s.translate(doc)
	if err != nil {
		log.Error().Err(err).Msg(logging.TranslateErr)
		return failed(outcome, err)
	}

	outcome.Title = result.Title
	outcome.Blocks = len(result.Blocks)
	log = log.With().Str(logging.Title, result.Title).Logger()

	for _, image := range result.UnresolvedImages() {
		log.Warn().Str(logging.ImageName, image.Name).Msg(logging.ImageNotFound)
	}

	if s.dryRun {
		log.Info().Int(logging.BlockCount, outcome.Blocks).
			Msg("Dry run, page not created")
		outcome.Status = SKIPPED
		return outcome
	}

	published := s.publisher.Publish(log.WithContext(ctx), result.Title,
		result.Blocks)
	outcome.PageID = string(published.PageID)
	if !published.Published() {
		log.Error().Err(published.Err).Str(logging.PageID, outcome.PageID).
			Msg(logging.PageCreateErr)
		return failed(outcome, published.Err)
	}

	log.Info().Str(logging.PageID, outcome.PageID).
		Int(logging.BlockCount, outcome.Blocks).Msg("Page created")
	outcome.Status = PUBLISHED
	return outcome
}

// translate never lets a panic in the translator escape the current file
func (s *Syncer) translate(doc *markdown.Document) (result *markdown.Result,
	err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.Errorf("translator panic: %v", r)
		}
	}()

	return s.translator.Translate(doc), nil
}

func failed(outcome Outcome, err error) Outcome {
	outcome.Status = FAILED
	outcome.Err = err
	return outcome
}
