package video

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/vidshelf/vidshelf/constant"
)

// Raw is one record exactly as it appears in a source document.
// Sources disagree on key casing, so the same logical field may be spelled
// in snake_case or PascalCase.
type Raw map[string]any

// Key spellings per logical field, snake_case first.
var (
	idKeys         = []string{"video_id", "Id"}
	promptKeys     = []string{"prompt", "Prompt"}
	firstFrameKeys = []string{"first_frame", "FirstFrame"}
	lastFrameKeys  = []string{"last_frame", "LastFrame"}
	urlKeys        = []string{"url", "Url"}
	widthKeys      = []string{"output_width", "OutputWidth"}
	heightKeys     = []string{"output_height", "OutputHeight"}
	qualityKeys    = []string{"quality", "Quality"}
	durationKeys   = []string{"duration", "Duration"}
	soundKeys      = []string{"is_sound", "IsSound"}
)

// Decode reads a source document: a JSON array of raw records.
func Decode(r io.Reader) ([]Raw, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var raws []Raw
	if err := decoder.Decode(&raws); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	return raws, nil
}

// Normalize maps a raw record onto a Record. The mapping is total:
// empty, zero or missing values fall through to the next spelling and finally to the field default.
func Normalize(raw Raw) Record {
	record := Record{
		ID:            text(raw, idKeys).OrElse(""),
		Prompt:        text(raw, promptKeys).OrElse(constant.DefaultPrompt),
		FirstFrameURL: text(raw, firstFrameKeys).OrElse(constant.PlaceholderImage),
		LastFrameURL:  text(raw, lastFrameKeys).OrElse(constant.PlaceholderImage),
		MediaURL:      text(raw, urlKeys).OrElse(constant.UnavailableMedia),
		Width:         dimension(raw, widthKeys).OrElse(0),
		Height:        dimension(raw, heightKeys).OrElse(0),
		Quality:       text(raw, qualityKeys).OrElse(constant.DefaultQuality),
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	if d, ok := number(raw, durationKeys).Get(); ok {
		record.Duration = &d
	}

	if s, ok := boolean(raw, soundKeys).Get(); ok {
		record.HasSound = &s
	}

	return record
}

// NormalizeAll normalizes every raw record, preserving order.
func NormalizeAll(raws []Raw) []Record {
	records := make([]Record, len(raws))
	for i, raw := range raws {
		records[i] = Normalize(raw)
	}
	return records
}

// text returns the first non-empty textual value among keys. Numeric identifiers are rendered as text.
func text(raw Raw, keys []string) mo.Option[string] {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return mo.Some(v)
			}
		case json.Number:
			if v.String() != "0" {
				return mo.Some(v.String())
			}
		case float64:
			if v != 0 {
				return mo.Some(strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
	}
	return mo.None[string]()
}

// dimension returns the first positive integral value among keys.
func dimension(raw Raw, keys []string) mo.Option[int] {
	for _, k := range keys {
		if f, ok := toFloat(raw[k]).Get(); ok && f >= 1 && f <= math.MaxInt32 {
			return mo.Some(int(f))
		}
	}
	return mo.None[int]()
}

// number returns the first numeric value among keys, zero included.
func number(raw Raw, keys []string) mo.Option[float64] {
	for _, k := range keys {
		if f, ok := toFloat(raw[k]).Get(); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return mo.Some(f)
		}
	}
	return mo.None[float64]()
}

func boolean(raw Raw, keys []string) mo.Option[bool] {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case bool:
			return mo.Some(v)
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return mo.Some(b)
			}
		default:
			if f, ok := toFloat(v).Get(); ok {
				return mo.Some(f != 0)
			}
		}
	}
	return mo.None[bool]()
}

func toFloat(v any) mo.Option[float64] {
	switch n := v.(type) {
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return mo.Some(f)
		}
	case float64:
		return mo.Some(n)
	case int:
		return mo.Some(float64(n))
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return mo.Some(f)
		}
	}
	return mo.None[float64]()
}
