package addon

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/stream"
)

type cacheData struct {
	Streams map[string][]stream.Entry `json:"streams"`
}

// cache persists stream lists per content id until the file expires.
type cache struct {
	internal *gache.Cache[*cacheData]
	mu       sync.Mutex
}

func newCache(path string, ttl time.Duration) *cache {
	return &cache{
		internal: gache.New[*cacheData](&gache.Options{
			Path:       path,
			Lifetime:   ttl,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (c *cache) Get(key string) mo.Option[[]stream.Entry] {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[[]stream.Entry]()
	}

	entries, ok := data.Streams[key]
	if !ok {
		return mo.None[[]stream.Entry]()
	}
	return mo.Some(entries)
}

func (c *cache) Set(key string, entries []stream.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		data = &cacheData{}
	}
	if data.Streams == nil {
		data.Streams = make(map[string][]stream.Entry)
	}

	data.Streams[key] = entries
	return c.internal.Set(data)
}
