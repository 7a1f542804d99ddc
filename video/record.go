// Package video defines the gallery's record model and the normalization of source documents into it.
package video

import (
	"fmt"

	"github.com/vidshelf/vidshelf/constant"
)

// Record is the normalized view of a single video's metadata.
// Every field is populated; optional fields are nil when the source did not carry them.
type Record struct {
	ID            string `json:"video_id" jsonschema:"description=Unique record identifier that is generated when the source has none"`
	Prompt        string `json:"prompt" jsonschema:"description=Free text description used for search"`
	FirstFrameURL string `json:"first_frame"`
	LastFrameURL  string `json:"last_frame"`
	MediaURL      string `json:"url" jsonschema:"description=Playable resource or '#' when unavailable"`
	Width         int    `json:"output_width" jsonschema:"minimum=0"`
	Height        int    `json:"output_height" jsonschema:"minimum=0"`
	Quality       string `json:"quality"`

	Duration *float64 `json:"duration,omitempty" jsonschema:"description=Length in seconds"`
	HasSound *bool    `json:"is_sound,omitempty"`
}

// HasMedia reports whether the record points to a playable resource.
func (r *Record) HasMedia() bool {
	return r.MediaURL != "" && r.MediaURL != constant.UnavailableMedia
}

// Resolution formats the pixel dimensions as WIDTHxHEIGHT.
func (r *Record) Resolution() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Filename is the name a downloaded copy of the video is saved under.
func (r *Record) Filename() string {
	return fmt.Sprintf("video_%s.mp4", r.ID)
}

// Preview returns the prompt cut to the preview length.
func (r *Record) Preview() string {
	runes := []rune(r.Prompt)
	if len(runes) <= constant.PromptPreviewRunes {
		return r.Prompt
	}
	return string(runes[:constant.PromptPreviewRunes]) + "..."
}

func (r *Record) String() string {
	return r.Preview()
}
