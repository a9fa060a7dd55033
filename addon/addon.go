// Package addon fetches stream lists and release years from catalog addons.
//
// Stream addons serve /stream/{type}/{id}.json and metadata addons /meta/{type}/{id}.json,
// following the catalog's addon protocol.
package addon

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/streamsift/streamsift/log"
	"github.com/streamsift/streamsift/network"
	"github.com/streamsift/streamsift/stream"
)

// Stream is a single item of an addon stream response.
type Stream struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	InfoHash    string `json:"infoHash,omitempty"`
}

// Entry converts the stream into its rendered form. Newer addons put the release block in
// description, older ones in title.
func (s Stream) Entry() stream.Entry {
	desc := s.Description
	if desc == "" {
		desc = s.Title
	}
	return stream.Entry{Name: s.Name, Description: strings.TrimSpace(desc)}
}

type streamResponse struct {
	Streams []Stream `json:"streams"`
}

type metaResponse struct {
	Meta struct {
		ReleaseInfo string `json:"releaseInfo"`
		Year        string `json:"year"`
	} `json:"meta"`
}

// Options configures a Client.
type Options struct {
	// StreamsURL is the base URL of the stream addon.
	StreamsURL string
	// MetaURL is the base URL of the metadata addon.
	MetaURL string
	// HTTP defaults to network.Client.
	HTTP *http.Client
	// CachePath enables an on-disk cache of stream lists when set.
	CachePath string
	CacheTTL  time.Duration
}

// Client talks to a stream addon and a metadata addon.
type Client struct {
	streamsURL string
	metaURL    string
	http       *http.Client
	cache      *cache
}

// New returns a client for opts.
func New(opts Options) *Client {
	c := &Client{
		streamsURL: strings.TrimRight(opts.StreamsURL, "/"),
		metaURL:    strings.TrimRight(opts.MetaURL, "/"),
		http:       opts.HTTP,
	}

	if c.http == nil {
		c.http = network.Client
	}

	if opts.CachePath != "" {
		c.cache = newCache(opts.CachePath, opts.CacheTTL)
	}

	return c
}

func endpoint(base, resource, kind, id string) string {
	return fmt.Sprintf("%s/%s/%s/%s.json", base, resource, url.PathEscape(kind), url.PathEscape(id))
}

// Streams returns the rendered entries of every stream the addon lists for id.
func (c *Client) Streams(ctx context.Context, kind, id string) ([]stream.Entry, error) {
	cacheKey := kind + "/" + id
	if c.cache != nil {
		if entries, ok := c.cache.Get(cacheKey).Get(); ok {
			log.Debugf("streams for %s served from cache", cacheKey)
			return entries, nil
		}
	}

	var resp streamResponse
	if err := network.GetJSON(ctx, c.http, endpoint(c.streamsURL, "stream", kind, id), &resp); err != nil {
		return nil, fmt.Errorf("streams of %s: %w", id, err)
	}

	entries := lo.Map(resp.Streams, func(s Stream, _ int) stream.Entry {
		return s.Entry()
	})

	if c.cache != nil {
		if err := c.cache.Set(cacheKey, entries); err != nil {
			log.Warnf("cache streams for %s: %v", cacheKey, err)
		}
	}

	return entries, nil
}

// Year returns the release label of id. Episode ids (tt123:1:2) resolve to their series.
func (c *Client) Year(ctx context.Context, kind, id string) (string, error) {
	base, _, _ := strings.Cut(id, ":")

	var resp metaResponse
	if err := network.GetJSON(ctx, c.http, endpoint(c.metaURL, "meta", kind, base), &resp); err != nil {
		return "", fmt.Errorf("meta of %s: %w", base, err)
	}

	if resp.Meta.ReleaseInfo != "" {
		return resp.Meta.ReleaseInfo, nil
	}
	return resp.Meta.Year, nil
}

// Snapshot fetches the stream list and release year of id. A year lookup failure is logged
// and leaves the year empty; titles then degrade to missing data.
func (c *Client) Snapshot(ctx context.Context, kind, id string) (stream.Snapshot, error) {
	entries, err := c.Streams(ctx, kind, id)
	if err != nil {
		return stream.Snapshot{}, err
	}

	year, err := c.Year(ctx, kind, id)
	if err != nil {
		log.With(logrus.Fields{"id": id, "error": err}).Warn("release year unavailable")
	}

	return stream.Snapshot{Year: year, Entries: entries}, nil
}
