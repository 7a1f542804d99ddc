// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 27

// Source Locations - these keys control where the video metadata documents are read from.
const (
	SourcesPaths   = "sources.paths"
	SourcesTimeout = "sources.timeout"
)

// Gallery Behaviour - these keys govern pagination, infinite scrolling and session persistence.
const (
	GalleryPageSize       = "gallery.page_size"
	GalleryPageSizes      = "gallery.page_sizes"
	GalleryInfiniteScroll = "gallery.infinite_scroll"
	GalleryRememberPage   = "gallery.remember_page"
	GalleryUseCache       = "gallery.use_cache"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchDebounceMs           = "search.debounce_ms"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Local Store - these keys select and configure the key-value backend.
const (
	StoreBackend       = "store.backend"
	StoreRedisAddr     = "store.redis_addr"
	StoreRedisDB       = "store.redis_db"
	StoreRedisPrefix   = "store.redis_prefix"
	StoreMaxValueBytes = "store.max_value_bytes"
)

// Object Storage - these keys configure s3:// source and media locations.
const (
	S3Region    = "s3.region"
	S3Profile   = "s3.profile"
	S3PathStyle = "s3.path_style"
)

// Media Integrations - these keys control downloads and playback.
const (
	DownloadsPath = "downloads.path"
	Player        = "player.default"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
