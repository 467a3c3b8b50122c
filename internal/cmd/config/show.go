package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/cmdutil"
	"github.com/gdxinit/cli/internal/config"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/output"
)

// showRow is the machine-readable form of one resolved value.
type showRow struct {
	Key      string            `json:"key" yaml:"key"`
	Value    string            `json:"value" yaml:"value"`
	Source   string            `json:"source" yaml:"source"`
	Shadowed map[string]string `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

// NewShowCmd creates the config show command.
func NewShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runShow(cfg.ConfigPath, format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runShow(path, format string) error {
	f, ok := output.ParseFormat(format)
	if !ok {
		return cmdutil.ToExitError(oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", format), "",
			fmt.Sprintf("Use one of: %s.", strings.Join(output.ValidFormats(), ", ")),
		), "")
	}

	loader := config.NewLoader()
	if _, err := loader.Load(path); err != nil {
		return cmdutil.ToExitError(err, loader.Path())
	}

	resolved := loader.Resolved()
	rows := make([]showRow, 0, len(resolved))
	for _, rv := range resolved {
		row := showRow{Key: rv.Key, Value: rv.Value, Source: string(rv.Source)}
		if len(rv.Shadowed) > 0 {
			row.Shadowed = make(map[string]string, len(rv.Shadowed))
			for src, v := range rv.Shadowed {
				row.Shadowed[string(src)] = v
			}
		}
		rows = append(rows, row)
	}

	switch f {
	case output.FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		output.Print(string(data))
	default:
		output.Println(fmt.Sprintf("Config file: %s", loader.Path()))
		output.Println("")
		tbl := output.NewTable("KEY", "VALUE", "SOURCE", "SHADOWED").Dim(3)
		for _, r := range rows {
			tbl.Row(r.Key, r.Value, r.Source, formatShadowed(r.Shadowed))
		}
		output.Println(tbl.String())
	}

	return nil
}

func formatShadowed(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m))
	for src, v := range m {
		parts = append(parts, src+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
