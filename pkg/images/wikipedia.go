package images

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// DefaultLookupTimeout bounds a full live lookup (both round-trips).
const DefaultLookupTimeout = 10 * time.Second

// wordPattern matches alphanumeric brand/model tokens in a product name.
var wordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9.'+\-]*`)

// ExtractSearchQuery pulls up to 4 leading alphanumeric tokens out of a
// product name to form a search query. Returns "" when the name has no
// such tokens, in which case a live lookup cannot be attempted.
func ExtractSearchQuery(productName string) string {
	words := wordPattern.FindAllString(productName, 4)
	return strings.Join(words, " ")
}

// WikipediaClient resolves product thumbnails from the public Wikipedia
// API: a text search for the name's leading tokens, then the summary of
// the top hit, which may carry a thumbnail. Every failure mode resolves
// to an empty reference; nothing here ever surfaces an error to the
// rendering path.
type WikipediaClient struct {
	client     *http.Client
	SearchBase string
	RESTBase   string
}

func NewWikipediaClient(timeout time.Duration) *WikipediaClient {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &WikipediaClient{
		client:     &http.Client{Timeout: timeout},
		SearchBase: "https://en.wikipedia.org/w/api.php",
		RESTBase:   "https://en.wikipedia.org/api/rest_v1",
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type summaryResponse struct {
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// FetchThumbnail runs the two-step lookup. The search call strictly
// precedes the summary call; the summary is fetched for the top search
// hit only. Transport errors, non-2xx responses and malformed payloads
// all return "".
func (w *WikipediaClient) FetchThumbnail(ctx context.Context, productName string) string {
	query := ExtractSearchQuery(productName)
	if query == "" {
		return ""
	}

	searchURL := w.SearchBase + "?action=query&list=search&srsearch=" +
		url.QueryEscape(query) + "&format=json&srlimit=1"

	var search searchResponse
	if !w.getJSON(ctx, searchURL, &search) {
		return ""
	}
	if len(search.Query.Search) == 0 {
		return ""
	}

	title := search.Query.Search[0].Title
	summaryURL := w.RESTBase + "/page/summary/" + url.PathEscape(title)

	var summary summaryResponse
	if !w.getJSON(ctx, summaryURL, &summary) {
		return ""
	}
	return summary.Thumbnail.Source
}

func (w *WikipediaClient) getJSON(ctx context.Context, rawURL string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(out) == nil
}
