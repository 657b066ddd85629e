// Package plex is a client for the Plex Media Server XML API.
package plex

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request, including asset downloads.
const DefaultTimeout = 30 * time.Second

// Config configures a Client.
type Config struct {
	URL        string
	Token      string
	Timeout    time.Duration
	LocalPath  string // Local path prefix (e.g., /srv/data/media)
	RemotePath string // Plex's path prefix (e.g., /data/media)
}

// Client interacts with the Plex Media Server API.
type Client struct {
	baseURL    string
	token      string
	remotePath string // Path prefix as seen by Plex
	localPath  string // Corresponding local path
	httpClient HTTPDoer
	log        *slog.Logger
}

// New creates a new Plex client.
func New(cfg Config, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log = plexLogger(log)
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		token:      cfg.Token,
		localPath:  cfg.LocalPath,
		remotePath: cfg.RemotePath,
		log:        log,
		httpClient: NewRetryingDoer(&http.Client{Timeout: timeout}).withLogger(log),
	}
}

func plexLogger(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return log.With("component", "plex")
}

// BaseURL returns the server URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TranslateToLocal converts a Plex path to the local path.
func (c *Client) TranslateToLocal(path string) string {
	if c.localPath == "" || c.remotePath == "" {
		return path
	}
	if strings.HasPrefix(path, c.remotePath) {
		return c.localPath + path[len(c.remotePath):]
	}
	return path
}

// newRequest builds an authenticated GET for a server-relative path or absolute URL.
func (c *Client) newRequest(ctx context.Context, ref string) (*http.Request, error) {
	reqURL := ref
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		if !strings.HasPrefix(ref, "/") {
			ref = "/" + ref
		}
		reqURL = c.baseURL + ref
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	return req, nil
}

// getXML fetches path and decodes the XML body into v.
func (c *Client) getXML(ctx context.Context, path string, v any) error {
	req, err := c.newRequest(ctx, path)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	if err := xml.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	c.log.Debug("request complete", "path", path, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

// GetIdentity returns the Plex server name and version.
func (c *Client) GetIdentity(ctx context.Context) (*Identity, error) {
	var result identityResponse
	if err := c.getXML(ctx, "/", &result); err != nil {
		return nil, err
	}
	return &Identity{
		Name:    result.FriendlyName,
		Version: result.Version,
	}, nil
}

// GetSections returns all library sections.
func (c *Client) GetSections(ctx context.Context) ([]Section, error) {
	var result sectionsResponse
	if err := c.getXML(ctx, "/library/sections", &result); err != nil {
		return nil, err
	}
	return result.Sections, nil
}

// ArtworkSections returns the movie and show sections.
// Returns ErrNoLibraries when there are none.
func (c *Client) ArtworkSections(ctx context.Context) ([]Section, error) {
	sections, err := c.GetSections(ctx)
	if err != nil {
		return nil, err
	}

	var eligible []Section
	for _, s := range sections {
		if s.Type == TypeMovie || s.Type == TypeShow {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoLibraries
	}
	return eligible, nil
}

// GetLibraryCount returns the number of items in a library section.
func (c *Client) GetLibraryCount(ctx context.Context, sectionKey string) (int, error) {
	// Use X-Plex-Container-Size=0 to get just the count without items
	path := fmt.Sprintf("/library/sections/%s/all?X-Plex-Container-Start=0&X-Plex-Container-Size=0", sectionKey)
	var result metadataResponse
	if err := c.getXML(ctx, path, &result); err != nil {
		return 0, err
	}
	return result.Size, nil
}

// ListLibraryItems returns all items in a library section.
func (c *Client) ListLibraryItems(ctx context.Context, sectionKey string) ([]Metadata, error) {
	var result metadataResponse
	if err := c.getXML(ctx, fmt.Sprintf("/library/sections/%s/all", sectionKey), &result); err != nil {
		return nil, err
	}
	return result.all(), nil
}

// GetMetadata re-reads a single item. Returns ErrNotFound if it was removed.
func (c *Client) GetMetadata(ctx context.Context, ratingKey string) (*Metadata, error) {
	var result metadataResponse
	if err := c.getXML(ctx, fmt.Sprintf("/library/metadata/%s", ratingKey), &result); err != nil {
		return nil, err
	}
	items := result.all()
	if len(items) == 0 {
		return nil, fmt.Errorf("metadata %s: %w", ratingKey, ErrNotFound)
	}
	return &items[0], nil
}

// GetChildren returns the seasons of a show or the episodes of a season.
func (c *Client) GetChildren(ctx context.Context, ratingKey string) ([]Metadata, error) {
	var result metadataResponse
	if err := c.getXML(ctx, fmt.Sprintf("/library/metadata/%s/children", ratingKey), &result); err != nil {
		return nil, err
	}
	return result.all(), nil
}
