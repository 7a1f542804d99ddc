package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/style"
)

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

// currentBuild falls back to the VCS stamp of the binary when no revision was linked in.
func currentBuild() buildInfo {
	info := buildInfo{
		App:      constant.App,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok && info.Revision == "unknown" {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.time":
				if info.BuiltAt == "unknown" {
					info.BuiltAt = s.Value
				}
			}
		}
	}

	return info
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}    {{ bold .Version }}
  {{ faint "Revision" }}   {{ bold .Revision }}
  {{ faint "Built" }}      {{ bold .BuiltAt }} by {{ bold .BuiltBy }}
  {{ faint "Go" }}         {{ bold .Go }} {{ bold .Platform }}
`))

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Print build information as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			_, _ = os.Stdout.WriteString(constant.Version + "\n")
		case lo.Must(cmd.Flags().GetBool("json")):
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(currentBuild()))
		default:
			handleErr(versionTemplate.Execute(os.Stdout, currentBuild()))
		}
	},
}
