// Package key defines the configuration keys.
package key

// Addon endpoints and caching.
const (
	AddonURL      = "addon.url"
	AddonMetaURL  = "addon.meta_url"
	AddonTimeout  = "addon.timeout"
	AddonCache    = "addon.cache"
	AddonCacheTTL = "addon.cache_ttl"
)

// Output rendering.
const (
	OutputTruncateTitles = "output.truncate_titles"
	OutputStyle          = "output.style"
)

// Watch mode.
const (
	WatchDebounce = "watch.debounce"
)

const (
	IconsVariant = "icons.variant"
)

const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored = "cli.colored"
)
