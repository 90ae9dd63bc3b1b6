package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mindful/internal/core"
	"mindful/internal/ledger"
	"mindful/internal/metrics"
)

type entryFlags struct {
	date, amount, category, merchant, reflection string
	tags                                         []string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount, e.g. 12.50")
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category name")
	cmd.Flags().StringVarP(&f.merchant, "merchant", "m", "", "merchant")
	cmd.Flags().StringVarP(&f.reflection, "reflection", "r", "", "how the purchase felt")
	cmd.Flags().StringSliceVarP(&f.tags, "tag", "t", nil, "value tag, repeatable")
}

func (f *entryFlags) input() ledger.EntryInput {
	return ledger.EntryInput{
		Date:       f.date,
		Amount:     f.amount,
		Category:   f.category,
		Merchant:   f.merchant,
		Reflection: f.reflection,
		Tags:       f.tags,
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write default categories, tags and sample entries where missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.session.Seeded
			if !report.Any() {
				var err error
				if report, err = a.journal().Seed(cmd.Context()); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if !report.Any() {
				fmt.Fprintln(out, "Nothing to seed")
				return nil
			}
			for _, f := range report.Seeded {
				fmt.Fprintf(out, "Seeded %s\n", f)
			}
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var f entryFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.journal().AddEntry(cmd.Context(), f.input())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", e.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var f entryFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an entry; omitted flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, ok := a.journal().Entry(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", ledger.ErrEntryNotFound, args[0])
			}

			in := f.input()
			flags := cmd.Flags()
			if !flags.Changed("amount") {
				in.Amount = core.FormatCents(cur.AmountCents)
			}
			if !flags.Changed("date") {
				in.Date = cur.DateISO
			}
			if !flags.Changed("category") {
				in.Category = cur.Category
			}
			if !flags.Changed("merchant") {
				in.Merchant = cur.Merchant
			}
			if !flags.Changed("reflection") {
				in.Reflection = cur.Reflection
			}
			if !flags.Changed("tag") {
				in.Tags = cur.Tags
			}

			if _, err := a.journal().EditEntry(cmd.Context(), cur.ID, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated")
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.journal().DeleteEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	}
}

func newToggleTagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-tag <id> <tag>",
		Short: "Add a tag to an entry, or remove it if present",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.journal().ToggleTag(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tags: %s\n", strings.Join(e.Tags, ", "))
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var month, category, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the month's entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.month(month)
			if err != nil {
				return err
			}
			entries := metrics.MonthEntries(a.journal().State().Entries, m)
			entries = metrics.Filter(entries, metrics.Query{Category: category, Search: search})
			renderEntries(cmd.OutOrStdout(), a.money, metrics.SortByDateDesc(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default active month)")
	cmd.Flags().StringVarP(&category, "category", "c", metrics.AllCategories, "only this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "match merchant, reflection or tags")
	return cmd
}
