// Package testutil provides shared test helpers for vaults and a stubbed
// Notion API.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jomei/notionapi"
)

// StubResponse is a canned reply for one request matched by method and path
type StubResponse struct {
	Method   string
	Path     string
	Status   int
	BodyFile string
}

// RecordedRequest keeps what the client sent
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// StubTransport answers Notion API calls from files instead of the network.
// Responses for the same method and path are served in the order given; the
// last one repeats.
type StubTransport struct {
	t         *testing.T
	mu        sync.Mutex
	responses []StubResponse
	served    map[string]int
	Requests  []RecordedRequest
}

func NewStubTransport(t *testing.T, responses ...StubResponse) *StubTransport {
	t.Helper()
	return &StubTransport{
		t:         t,
		responses: responses,
		served:    map[string]int{},
	}
}

func (s *StubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := []byte{}
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
	}

	s.Requests = append(s.Requests, RecordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Header: req.Header.Clone(),
		Body:   body,
	})

	matching := []StubResponse{}
	for _, resp := range s.responses {
		if resp.Method == req.Method && resp.Path == req.URL.Path {
			matching = append(matching, resp)
		}
	}

	if len(matching) == 0 {
		s.t.Errorf("unexpected request %s %s", req.Method, req.URL.Path)
		return jsonResponse(req, http.StatusNotFound,
			[]byte(`{"object":"error","status":404,"code":"object_not_found","message":"stub"}`)), nil
	}

	key := req.Method + " " + req.URL.Path
	idx := s.served[key]
	if idx >= len(matching) {
		idx = len(matching) - 1
	}
	s.served[key]++

	data, err := os.ReadFile(matching[idx].BodyFile)
	if err != nil {
		s.t.Fatalf("failed to read stub body %s: %v", matching[idx].BodyFile, err)
	}

	return jsonResponse(req, matching[idx].Status, data), nil
}

func jsonResponse(req *http.Request, status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
		Request:    req,
	}
}

// NewStubbedNotionClient returns a real notionapi client that talks to the
// stub transport
func NewStubbedNotionClient(transport *StubTransport) func(notionapi.Token,
	...notionapi.ClientOption) *notionapi.Client {
	return func(token notionapi.Token,
		opts ...notionapi.ClientOption) *notionapi.Client {
		opts = append(opts, notionapi.WithHTTPClient(&http.Client{
			Transport: transport,
		}))
		return notionapi.NewClient(token, opts...)
	}
}

// WriteVault creates the given files, keyed by slash separated relative
// path, under a temporary directory and returns its path
func WriteVault(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
