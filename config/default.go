// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}
	defer func() {
		if len(Default) != key.DefinedFieldsCount {
			panic(fmt.Sprintf("registered %d config fields, expected %d", len(Default), key.DefinedFieldsCount))
		}
	}()

	register(key.SourcesPaths, []string{"data/master_video_data.json", "data/pixverse.json"}, "Video metadata documents, loaded concurrently and merged in this order.\nLocal paths, http(s):// URLs and s3://bucket/key locations are accepted")
	register(key.SourcesTimeout, 30, "Timeout in seconds for fetching a single source")
	register(key.GalleryPageSize, 40, "Number of videos shown per page")
	register(key.GalleryPageSizes, []int{10, 20, 40, 80}, "Page sizes offered by the page size selector")
	register(key.GalleryInfiniteScroll, false, "Append the next page when scrolling past the last video instead of paging")
	register(key.GalleryRememberPage, true, "Restore the last viewed page on startup")
	register(key.GalleryUseCache, true, "Reuse the locally cached video list instead of fetching sources.\nThe cache never expires, run \"vidshelf clear --cache\" to refresh it")
	register(key.SearchDebounceMs, 300, "Quiet period in milliseconds before a typed search term is applied")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.StoreBackend, "file", "Local key-value store backend.\nAvailable options are: file, redis")
	register(key.StoreRedisAddr, "localhost:6379", "Redis address used by the redis store backend")
	register(key.StoreRedisDB, 0, "Redis database index used by the redis store backend")
	register(key.StoreRedisPrefix, "vidshelf:", "Prefix prepended to every key written to redis")
	register(key.StoreMaxValueBytes, 5*1024*1024, "Largest value the store accepts, in bytes. 0 disables the limit")
	register(key.S3Region, "", "AWS region for s3:// locations. Empty uses the default AWS chain")
	register(key.S3Profile, "", "AWS shared config profile for s3:// locations")
	register(key.S3PathStyle, false, "Use path-style addressing for S3-compatible endpoints")
	register(key.DownloadsPath, "", "Directory downloaded videos are written to.\nEmpty uses the downloads folder inside the cache directory")
	register(key.Player, "", "Application used to play videos. Empty uses the system default handler")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIShowURLs, false, "Show media URLs under list items")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
