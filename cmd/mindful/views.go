package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindful/internal/core"
	"mindful/internal/format"
	"mindful/internal/ledger"
	"mindful/internal/metrics"
)

const topCount = 5

func newSummaryCmd(a *app) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, alignment and rankings for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.month(month)
			if err != nil {
				return err
			}
			all := a.journal().State().Entries
			entries := metrics.MonthEntries(all, m)
			totals := metrics.ComputeTotals(all, m)
			counts := metrics.Counts(entries)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, format.MonthLabel(m))
			fmt.Fprintf(out, "Total: %s over %d entries\n", a.money.Format(totals.Total), totals.Count)
			fmt.Fprintf(out, "Average per day: %s (%d days)\n", a.money.Format(totals.AvgPerDay), totals.Days)
			fmt.Fprintf(out, "Aligned share: %d%%\n", metrics.AlignedShare(entries))
			fmt.Fprintf(out, "Aligned %d, neutral %d, misaligned %d\n", counts.Aligned, counts.Neutral, counts.Misaligned)

			renderRanked(out, a.money, "Top merchants", metrics.TopN(entries, metrics.ByMerchant, topCount))
			renderRanked(out, a.money, "Top categories", metrics.TopN(entries, metrics.ByCategory, topCount))
			renderPulse(out, metrics.TagPulse(entries, metrics.DefaultPulseSize))
			best, worst := metrics.Highlights(entries, highlightCount)
			renderHighlights(out, a.money, best, worst)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default active month)")
	return cmd
}

func newBudgetsCmd(a *app) *cobra.Command {
	var month, preview, amount string
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Show category usage against caps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.month(month)
			if err != nil {
				return err
			}
			state := a.journal().State()
			out := cmd.OutOrStdout()

			if preview != "" {
				b, ok := metrics.Preview(state.Categories, state.Entries, m, preview, core.ToCents(amount))
				if !ok {
					return fmt.Errorf("%w: %s", ledger.ErrCategoryNotFound, preview)
				}
				renderBudgets(out, a.money, []metrics.BudgetStatus{b})
				return nil
			}

			usage := metrics.UsageByCategory(state.Entries, m)
			fmt.Fprintln(out, format.MonthLabel(m))
			renderBudgets(out, a.money, metrics.Budgets(state.Categories, usage))
			if orphans := metrics.OrphanedUsage(state.Categories, usage); len(orphans) > 0 {
				renderRanked(out, a.money, "Spending outside current categories", orphans)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default active month)")
	cmd.Flags().StringVar(&preview, "preview", "", "project this category's budget")
	cmd.Flags().StringVar(&amount, "amount", "0", "amount to add in the projection")
	return cmd
}

func newRetroCmd(a *app) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "retro",
		Short: "Show a month's retrospective",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.month(month)
			if err != nil {
				return err
			}
			entries := metrics.MonthEntries(a.journal().State().Entries, m)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Retrospective for %s\n", format.MonthLabel(m))
			if note := a.journal().Note(m); note != "" {
				fmt.Fprintf(out, "\n%s\n", note)
			} else {
				fmt.Fprintln(out, "\nNo note yet")
			}
			best, worst := metrics.Highlights(entries, highlightCount)
			renderHighlights(out, a.money, best, worst)
			renderPulse(out, metrics.TagPulse(entries, metrics.DefaultPulseSize))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default active month)")
	return cmd
}
