package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/spf13/cobra"
)

func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the selectable fields, tones, languages and variants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderOptions(cmd.OutOrStdout())
			return nil
		},
	}
}

func renderOptions(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Content options")
	t.AppendHeader(table.Row{"Option", "Values", "Default"})

	t.AppendRow(table.Row{"Field", joinOptions(domain.Fields()), domain.DefaultField})
	t.AppendRow(table.Row{"Tone", joinOptions(domain.Tones()), domain.DefaultTone})
	t.AppendRow(table.Row{
		"Word length",
		strconv.Itoa(domain.MinWordLength) + "-" + strconv.Itoa(domain.MaxWordLength) +
			" step " + strconv.Itoa(domain.WordLengthStep),
		domain.DefaultWordLength,
	})
	t.AppendRow(table.Row{"Variant", joinOptions(domain.Variants()), domain.DefaultVariant})
	t.Render()

	languages := table.NewWriter()
	languages.SetOutputMirror(w)
	languages.SetStyle(table.StyleLight)
	languages.SetTitle("Languages")
	languages.AppendHeader(table.Row{"Code", "Name", "Native name"})
	for _, lang := range domain.Languages() {
		languages.AppendRow(table.Row{lang.Code, lang.Name, lang.NativeName})
	}
	languages.Render()
}

func joinOptions[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
