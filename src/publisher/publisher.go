package publisher

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sawantshivaji1997/vaultsync/src/logging"
	"github.com/sawantshivaji1997/vaultsync/src/markdown"
	"github.com/sawantshivaji1997/vaultsync/src/notionclient"
)

const (
	PARENT_TYPE_DATABASE = notionapi.ParentType("database_id")
	// Name of the title column pages are created under
	TITLE_PROPERTY      = "Name"
	TITLE_PROPERTY_TYPE = "title"
)

// Result of publishing one document. PageID is set whenever the page was
// created, even if appending the remaining blocks failed afterwards.
type Result struct {
	PageID notionapi.ObjectID
	Err    error
}

func (r Result) Published() bool {
	return r.Err == nil
}

type Publisher struct {
	notionClient notionclient.NotionClient
	databaseID   notionclient.DatabaseID
}

func GetPublisher(notionClient notionclient.NotionClient,
	databaseID notionclient.DatabaseID) *Publisher {
	return &Publisher{
		notionClient: notionClient,
		databaseID:   databaseID,
	}
}

// Preflight makes sure the database can be reached with the configured token.
// A database without the title column pages are created under is only
// reported, every page create will then fail on its own.
func (p *Publisher) Preflight(ctx context.Context) (*notionapi.Database,
	error) {
	database, err := p.notionClient.GetDatabaseByID(ctx, p.databaseID)
	if err != nil {
		return nil, errors.Wrapf(err, "database %s is not reachable", p.databaseID)
	}

	if !HasTitleProperty(database) {
		zerolog.Ctx(ctx).Warn().Str(logging.DatabaseID, string(p.databaseID)).
			Msg(logging.TitlePropertyMissing)
	}

	return database, nil
}

// Reports whether database has a title column named TITLE_PROPERTY
func HasTitleProperty(database *notionapi.Database) bool {
	property, found := database.Properties[TITLE_PROPERTY]
	return found && property != nil &&
		string(property.GetType()) == TITLE_PROPERTY_TYPE
}

// Returns the request that creates a page with the given title and first
// batch of children
func (p *Publisher) pageCreateRequest(title string,
	children []notionapi.Block) *notionapi.PageCreateRequest {
	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       PARENT_TYPE_DATABASE,
			DatabaseID: notionapi.DatabaseID(p.databaseID),
		},
		Properties: notionapi.Properties{
			TITLE_PROPERTY: notionapi.TitleProperty{
				Type:  notionapi.PropertyTypeTitle,
				Title: richText(title),
			},
		},
		Children: children,
	}
}

// Publish creates a new page in the database. A page is always created;
// existing pages with the same title are left alone.
func (p *Publisher) Publish(ctx context.Context, title string,
	blocks []markdown.Block) Result {
	log := zerolog.Ctx(ctx)
	children := ToNotionBlocks(blocks)

	first, rest := splitBlocks(children, notionclient.MAX_CHILDREN_PER_REQUEST)
	page, err := p.notionClient.CreatePage(ctx, p.pageCreateRequest(title, first))
	if err != nil {
		return Result{Err: errors.Wrap(err, logging.PageCreateErr)}
	}

	log.Debug().Str(logging.PageID, string(page.ID)).
		Int(logging.BlockCount, len(first)).Msg("Page created")

	for len(rest) > 0 {
		var batch []notionapi.Block
		batch, rest = splitBlocks(rest, notionclient.MAX_CHILDREN_PER_REQUEST)

		_, err = p.notionClient.AppendBlocksToPage(ctx,
			notionclient.PageID(page.ID), batch)
		if err != nil {
			return Result{
				PageID: page.ID,
				Err:    errors.Wrap(err, logging.BlocksAppendErr),
			}
		}

		log.Debug().Str(logging.PageID, string(page.ID)).
			Int(logging.BlockCount, len(batch)).Msg("Blocks appended")
	}

	return Result{PageID: page.ID}
}

func splitBlocks(blocks []notionapi.Block,
	size int) ([]notionapi.Block, []notionapi.Block) {
	if len(blocks) <= size {
		return blocks, nil
	}
	return blocks[:size], blocks[size:]
}
