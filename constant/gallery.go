package constant

// Local store identifiers. The names are shared with earlier browser builds of the gallery.
const (
	RecordsCacheKey = "videoData"
	PageKey         = "currentPage"
)

// Record field defaults applied during normalization.
const (
	DefaultPrompt      = "No description"
	PlaceholderImage   = "placeholder.jpg"
	UnavailableMedia   = "#"
	DefaultQuality     = "Unknown"
	PromptPreviewRunes = 100
	PageWindowSize     = 10
)
