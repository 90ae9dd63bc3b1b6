package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"mindful/internal/core"
	"mindful/internal/format"
	"mindful/internal/metrics"
)

const highlightCount = 3

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderEntries(w io.Writer, money format.Money, entries []core.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tAMOUNT\tCATEGORY\tMERCHANT\tTAGS\tALIGNMENT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			format.Date(e.DateISO),
			money.Format(e.AmountCents),
			orDash(e.Category),
			orDash(e.Merchant),
			orDash(strings.Join(e.Tags, ", ")),
			metrics.Alignment(e.Tags).Label,
		)
	}
	tw.Flush()
}

func renderRanked(w io.Writer, money format.Money, title string, rows []metrics.Ranked) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	tw := newTable(w)
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s\t%s\n", r.Key, money.Format(r.Value))
	}
	tw.Flush()
}

func renderPulse(w io.Writer, pulse []metrics.TagCount) {
	fmt.Fprintln(w, "\nTag pulse")
	if len(pulse) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	tw := newTable(w)
	for _, p := range pulse {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", p.Tag, p.Count, core.PolarityOf(p.Tag))
	}
	tw.Flush()
}

func renderHighlights(w io.Writer, money format.Money, best, worst []core.Entry) {
	section := func(title string, entries []core.Entry) {
		fmt.Fprintf(w, "\n%s\n", title)
		if len(entries) == 0 {
			fmt.Fprintln(w, "  none")
			return
		}
		for _, e := range entries {
			fmt.Fprintf(w, "  %s %s at %s [%s]\n",
				format.Date(e.DateISO), money.Format(e.AmountCents), orDash(e.Merchant), strings.Join(e.Tags, ", "))
		}
	}
	section("Most aligned", best)
	section("Least aligned", worst)
}

func renderBudgets(w io.Writer, money format.Money, budgets []metrics.BudgetStatus) {
	if len(budgets) == 0 {
		fmt.Fprintln(w, "No categories")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "CATEGORY\tUSED\tCAP\tPERCENT\tSTATUS")
	for _, b := range budgets {
		fmt.Fprintln(tw, budgetRow(money, b))
	}
	tw.Flush()
}

func budgetRow(money format.Money, b metrics.BudgetStatus) string {
	if b.Level == metrics.Uncapped {
		return fmt.Sprintf("%s\t%s\t-\t-\t%s", b.Name, money.Format(b.Used), b.Level)
	}
	return fmt.Sprintf("%s\t%s\t%s\t%d%%\t%s", b.Name, money.Format(b.Used), money.Format(b.Cap), b.Percent, b.Level)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
