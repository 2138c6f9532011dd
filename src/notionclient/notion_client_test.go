package notionclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/sawantshivaji1997/vaultsync/src/notionclient"
	"github.com/sawantshivaji1997/vaultsync/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TOKEN                   = "secret_token"
	DATABASE_ID             = "5ed2d97a-510a-4756-b113-cc28c7a30fd7"
	PAGE_ID                 = "05034203-2870-4bc8-b1f9-22c0ae6e56ba"
	TEST_DATA_PATH          = "./../../testdata/notionclient/"
	DATABASE_JSON           = TEST_DATA_PATH + "database.json"
	PAGE_JSON               = TEST_DATA_PATH + "page.json"
	APPEND_RESPONSE_JSON    = TEST_DATA_PATH + "append_response.json"
	UNAUTHORIZED_JSON       = TEST_DATA_PATH + "unauthorized.json"
	OBJECT_NOT_FOUND_JSON   = TEST_DATA_PATH + "object_not_found.json"
	DATABASES_PATH          = "/v1/databases/" + DATABASE_ID
	PAGES_PATH              = "/v1/pages"
	BLOCK_CHILDREN_PATH     = "/v1/blocks/" + PAGE_ID + "/children"
	UNAUTHORIZED_ERROR_TEXT = "API token is invalid."
)

// Mocking the NewClient from github.com/jomei/notionapi
func newMockedClient(token notionapi.Token, opt ...notionapi.ClientOption) *notionapi.Client {
	return &notionapi.Client{}
}

func getStubbedClient(t *testing.T,
	responses ...testutil.StubResponse) (notionclient.NotionClient,
	*testutil.StubTransport) {
	transport := testutil.NewStubTransport(t, responses...)
	client := notionclient.GetNotionApiClient(context.Background(), TOKEN,
		testutil.NewStubbedNotionClient(transport))
	return client, transport
}

func TestGetNotionClient(t *testing.T) {
	t.Run("Get Client with valid parameters", func(t *testing.T) {
		client := notionclient.GetNotionApiClient(context.Background(), "asdasd", newMockedClient)
		assert.NotNil(t, client)
	})
}

func TestGetDatabaseByID(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		bodyFile string
		wantErr  bool
	}{
		{
			name:     "Get existing database",
			status:   http.StatusOK,
			bodyFile: DATABASE_JSON,
			wantErr:  false,
		},
		{
			name:     "Database not shared with integration",
			status:   http.StatusNotFound,
			bodyFile: OBJECT_NOT_FOUND_JSON,
			wantErr:  true,
		},
		{
			name:     "Invalid token",
			status:   http.StatusUnauthorized,
			bodyFile: UNAUTHORIZED_JSON,
			wantErr:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client, transport := getStubbedClient(t, testutil.StubResponse{
				Method:   http.MethodGet,
				Path:     DATABASES_PATH,
				Status:   test.status,
				BodyFile: test.bodyFile,
			})

			database, err := client.GetDatabaseByID(context.Background(),
				DATABASE_ID)
			if test.wantErr {
				assert.Nil(t, database)
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
				require.NotNil(t, database)
				assert.Equal(t, DATABASE_ID, string(database.ID))
				assert.Contains(t, database.Properties, "Name")
			}

			require.Len(t, transport.Requests, 1)
			assert.Equal(t, "Bearer "+TOKEN,
				transport.Requests[0].Header.Get("Authorization"))
			assert.NotEmpty(t, transport.Requests[0].Header.Get("Notion-Version"))
		})
	}
}

func TestCreatePage(t *testing.T) {
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentType("database_id"),
			DatabaseID: notionapi.DatabaseID(DATABASE_ID),
		},
		Properties: notionapi.Properties{
			"Name": notionapi.TitleProperty{
				Type: notionapi.PropertyTypeTitle,
				Title: []notionapi.RichText{
					{
						Type: notionapi.ObjectTypeText,
						Text: &notionapi.Text{Content: "My Note"},
					},
				},
			},
		},
		Children: []notionapi.Block{
			&notionapi.ParagraphBlock{
				BasicBlock: notionapi.BasicBlock{
					Object: notionapi.ObjectTypeBlock,
					Type:   notionapi.BlockTypeParagraph,
				},
				Paragraph: notionapi.Paragraph{
					RichText: []notionapi.RichText{
						{
							Type: notionapi.ObjectTypeText,
							Text: &notionapi.Text{Content: "Some text."},
						},
					},
				},
			},
		},
	}

	t.Run("Create page", func(t *testing.T) {
		client, transport := getStubbedClient(t, testutil.StubResponse{
			Method:   http.MethodPost,
			Path:     PAGES_PATH,
			Status:   http.StatusOK,
			BodyFile: PAGE_JSON,
		})

		page, err := client.CreatePage(context.Background(), req)
		assert.Nil(t, err)
		require.NotNil(t, page)
		assert.Equal(t, PAGE_ID, string(page.ID))

		require.Len(t, transport.Requests, 1)
		body := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(transport.Requests[0].Body, &body))
		parent := body["parent"].(map[string]interface{})
		assert.Equal(t, DATABASE_ID, parent["database_id"])
		assert.Len(t, body["children"], 1)
		assert.Contains(t, body["properties"], "Name")
	})

	t.Run("Unauthorized", func(t *testing.T) {
		client, _ := getStubbedClient(t, testutil.StubResponse{
			Method:   http.MethodPost,
			Path:     PAGES_PATH,
			Status:   http.StatusUnauthorized,
			BodyFile: UNAUTHORIZED_JSON,
		})

		page, err := client.CreatePage(context.Background(), req)
		assert.Nil(t, page)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), UNAUTHORIZED_ERROR_TEXT)
	})
}

func TestAppendBlocksToPage(t *testing.T) {
	blocks := []notionapi.Block{
		&notionapi.QuoteBlock{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeQuote,
			},
			Quote: notionapi.Quote{
				RichText: []notionapi.RichText{
					{
						Type: notionapi.ObjectTypeText,
						Text: &notionapi.Text{Content: "quote"},
					},
				},
			},
		},
	}

	t.Run("Append blocks", func(t *testing.T) {
		client, transport := getStubbedClient(t, testutil.StubResponse{
			Method:   http.MethodPatch,
			Path:     BLOCK_CHILDREN_PATH,
			Status:   http.StatusOK,
			BodyFile: APPEND_RESPONSE_JSON,
		})

		resp, err := client.AppendBlocksToPage(context.Background(), PAGE_ID,
			blocks)
		assert.Nil(t, err)
		assert.NotNil(t, resp)

		require.Len(t, transport.Requests, 1)
		body := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(transport.Requests[0].Body, &body))
		assert.Len(t, body["children"], 1)
	})

	t.Run("Error in appending blocks", func(t *testing.T) {
		client, _ := getStubbedClient(t, testutil.StubResponse{
			Method:   http.MethodPatch,
			Path:     BLOCK_CHILDREN_PATH,
			Status:   http.StatusUnauthorized,
			BodyFile: UNAUTHORIZED_JSON,
		})

		resp, err := client.AppendBlocksToPage(context.Background(), PAGE_ID,
			blocks)
		assert.Nil(t, resp)
		assert.NotNil(t, err)
	})
}
