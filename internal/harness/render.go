package harness

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle is a rounded table with highlighted rows.
func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	style.Color.Header = text.Colors{text.Bold, text.FgHiCyan}
	style.Color.Row = text.Colors{text.FgHiWhite}
	style.Color.RowAlternate = text.Colors{text.FgWhite}
	return &style
}

func formatInts(vs []int) string {
	if len(vs) == 0 {
		return "-"
	}
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, " ")
}

// Render writes r as a two column table. color selects the highlighted style
// over the plain box drawing one.
func Render(w io.Writer, r *Report, color bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if color {
		t.SetStyle(*NewDefaultTableStyle())
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.SetTitle("%s", r.Name)
	t.AppendHeader(table.Row{"query", "result"})
	t.AppendRows([]table.Row{
		{"in-order", formatInts(r.InOrder)},
		{"level-order", formatInts(r.LevelOrder)},
		{"size", r.Size},
		{"height", r.Height},
	})
	for _, h := range r.Heights {
		if h.Found {
			t.AppendRow(table.Row{fmt.Sprintf("height of %d", h.Value), h.Height})
		} else {
			t.AppendRow(table.Row{fmt.Sprintf("height of %d", h.Value), "not in tree"})
		}
	}
	t.AppendRows([]table.Row{
		{"depth sum", r.SumDepths},
		{"2L nodes", formatInts(r.Skew2L)},
		{"valid BST", r.IsBST},
		{"valid AVL", r.IsAVL},
	})
	for _, f := range r.FollowUps {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{fmt.Sprintf("after adding %d: valid AVL", f.Value), f.IsAVL},
			{fmt.Sprintf("after adding %d: 2L nodes", f.Value), formatInts(f.Skew2L)},
		})
	}
	t.Render()
}
