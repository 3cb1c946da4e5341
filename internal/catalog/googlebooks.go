package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1"

var (
	ErrEmptyTerm   = errors.New("search term is required")
	ErrUnavailable = errors.New("book catalog unavailable")
)

// Searcher looks up candidate books in an external catalog.
type Searcher interface {
	Search(ctx context.Context, term string) ([]model.Candidate, error)
}

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RPS caps outbound requests per second; 0 disables the limit.
	RPS int
}

// GoogleBooks searches the Google Books volumes endpoint. Each call makes
// at most one request and never retries.
type GoogleBooks struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// Compile-time check that GoogleBooks implements Searcher.
var _ Searcher = (*GoogleBooks)(nil)

func NewGoogleBooks(opts Options) *GoogleBooks {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	g := &GoogleBooks{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
	}
	if opts.RPS > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(opts.RPS), opts.RPS)
	}
	return g
}

// WithHTTPClient replaces the underlying client, mainly for tests.
func (g *GoogleBooks) WithHTTPClient(c *http.Client) *GoogleBooks {
	g.httpClient = c
	return g
}

// volumesResponse matches the parts of the volumes search response we read.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			PublishedDate string   `json:"publishedDate"`
			ImageLinks    *struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

func (g *GoogleBooks) Search(ctx context.Context, term string) ([]model.Candidate, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	if g.limiter != nil && !g.limiter.Allow() {
		return nil, fmt.Errorf("%w: outbound rate limit reached", ErrUnavailable)
	}

	q := url.Values{}
	q.Set("q", term)
	q.Set("maxResults", strconv.Itoa(model.MaxSearchResult))
	if g.apiKey != "" {
		q.Set("key", g.apiKey)
	}
	u := g.baseURL + "/volumes?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: API returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var result volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	n := len(result.Items)
	if n > model.MaxSearchResult {
		n = model.MaxSearchResult
	}

	candidates := make([]model.Candidate, 0, n)
	for _, item := range result.Items[:n] {
		vol := item.VolumeInfo

		c := model.Candidate{
			GoogleAPIID:     item.ID,
			Title:           vol.Title,
			Author:          joinAuthors(vol.Authors),
			PublicationYear: yearOf(vol.PublishedDate),
		}
		if vol.ImageLinks != nil && vol.ImageLinks.Thumbnail != "" {
			thumb := vol.ImageLinks.Thumbnail
			c.CoverURL = &thumb
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

func joinAuthors(authors []string) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if a = strings.TrimSpace(a); a != "" {
			names = append(names, a)
		}
	}
	if len(names) == 0 {
		return model.UnknownAuthor
	}
	return strings.Join(names, ", ")
}

// yearOf keeps the first four characters of a date such as "2004-05-01"
// or "2004".
func yearOf(date string) string {
	r := []rune(strings.TrimSpace(date))
	if len(r) == 0 {
		return model.UnknownYear
	}
	if len(r) > 4 {
		r = r[:4]
	}
	return string(r)
}
