// Package renderer turns account reports into markdown.
package renderer

import (
	"bytes"

	"github.com/hweili/daybook"
	md "github.com/nao1215/markdown"
)

// DailyMarkdown renders a full daily report: the day's figures, the open
// positions and the day's trades.
func DailyMarkdown(r *daybook.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Report " + r.Date.String())

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Assets"),
			md.Bold(r.TotalAssets.String()),
		},
		Rows: [][]string{
			{"Cash", r.Cash.String()},
			{"Position Value", r.PositionValue.String()},
			{"Daily Return", r.Return.SignedString()},
		},
	})

	if len(r.Positions) > 0 {
		doc.H2("Positions")
		doc.Table(positionsTable(r.Positions))
	}

	if len(r.Trades) > 0 {
		doc.H2("Trades")
		var trades []string
		for _, t := range r.Trades {
			trades = append(trades, Trade(t))
		}
		doc.OrderedList(trades...)
	}

	return doc.String()
}

// PositionsMarkdown renders the positions held on a day as a table.
func PositionsMarkdown(on daybook.Date, positions []daybook.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Positions " + on.String())
	if len(positions) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}
	doc.Table(positionsTable(positions))
	return doc.String()
}

func positionsTable(positions []daybook.Position) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Security",
			"Name",
			"Quantity",
			"Avg. Cost",
			"Cost Value",
		},
	}
	for _, p := range positions {
		table.Rows = append(table.Rows, []string{
			p.Security,
			p.Name,
			p.Quantity.String(),
			p.AverageCost.String(),
			p.CostValue().String(),
		})
	}
	return table
}
