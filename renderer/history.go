package renderer

import (
	"bytes"

	"github.com/hweili/daybook"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the per-day asset history as a table: one row per
// known day with total assets and day-over-day return.
func HistoryMarkdown(points []daybook.ReturnPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Asset History")
	if len(points) == 0 {
		doc.PlainText("No recorded days.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Date",
			"Total Assets",
			"Return",
		},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.TotalAssets.String(),
			p.Return.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
