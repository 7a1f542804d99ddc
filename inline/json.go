package inline

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/vidshelf/vidshelf/video"
)

type Output struct {
	// Query is the normalized search term, empty when unfiltered.
	Query string `json:"query"`
	// Pages are the page numbers the result was taken from.
	Pages        []int  `json:"pages"`
	PageSize     int    `json:"page_size"`
	TotalPages   int    `json:"total_pages"`
	TotalMatches int    `json:"total_matches"`
	Stats        string `json:"stats"`

	Result []video.Record `json:"result"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Pages == nil {
		output.Pages = []int{}
	}
	if output.Result == nil {
		output.Result = []video.Record{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Schema describes the JSON document written in json mode.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		switch name := t.Name(); name {
		case "Record", "Output":
			return "vidshelf." + name
		default:
			return name
		}
	}

	return reflector.Reflect(&Output{})
}
