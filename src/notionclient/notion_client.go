package notionclient

import (
	"context"

	"github.com/jomei/notionapi"
)

type PageID string
type DatabaseID string
type Token string

const (
	// Notion rejects requests carrying more children than this
	MAX_CHILDREN_PER_REQUEST = 100
)

type (
	NewClient func(notionapi.Token, ...notionapi.ClientOption) *notionapi.Client
)

type NotionClient interface {
	GetDatabaseByID(context.Context, DatabaseID) (*notionapi.Database, error)
	CreatePage(context.Context, *notionapi.PageCreateRequest) (*notionapi.Page, error)
	AppendBlocksToPage(context.Context, PageID, []notionapi.Block) (*notionapi.AppendBlockChildrenResponse, error)
}

type NotionApiClient struct {
	Client *notionapi.Client
}

// Function to get NotionApiClient instance
func GetNotionApiClient(ctx context.Context, token Token, newClient NewClient,
	opts ...notionapi.ClientOption) NotionClient {
	return &NotionApiClient{
		Client: newClient(notionapi.Token(token), opts...),
	}
}

// Get Database with given DatabaseID
func (c *NotionApiClient) GetDatabaseByID(ctx context.Context,
	id DatabaseID) (*notionapi.Database, error) {
	return c.Client.Database.Get(ctx, notionapi.DatabaseID(id))
}

// Create a new Page as described by the request
func (c *NotionApiClient) CreatePage(ctx context.Context,
	req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	return c.Client.Page.Create(ctx, req)
}

// Append blocks at the end of given page
func (c *NotionApiClient) AppendBlocksToPage(ctx context.Context, id PageID,
	blocks []notionapi.Block) (*notionapi.AppendBlockChildrenResponse, error) {
	req := &notionapi.AppendBlockChildrenRequest{
		Children: blocks,
	}
	return c.Client.Block.AppendChildren(ctx, notionapi.BlockID(id), req)
}
