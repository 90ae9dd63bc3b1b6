package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mindful/internal/core"
	"mindful/internal/format"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage spending categories",
	}

	add := &cobra.Command{
		Use:   "add <name> [cap]",
		Short: "Create a category with an optional monthly cap",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			capInput := ""
			if len(args) == 2 {
				capInput = args[1]
			}
			c, err := a.journal().AddCategory(cmd.Context(), args[0], capInput)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", c.Name)
			return nil
		},
	}

	setCap := &cobra.Command{
		Use:   "cap <name> <amount>",
		Short: "Set a category's monthly cap, 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.journal().SetCap(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s cap: %s\n", c.Name, a.money.Format(c.CapCents))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a category; its entries keep the name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.journal().RemoveCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "NAME\tCAP\tCOLOR")
			for _, c := range a.journal().State().Categories {
				capText := "-"
				if c.CapCents > 0 {
					capText = a.money.Format(c.CapCents)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, capText, c.Color)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(add, setCap, remove, list)
	return cmd
}

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage the tag vocabulary",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <tag>",
		Short: "Add a custom tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, added, err := a.journal().AddTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", tag)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", tag)
			return nil
		},
	})
	return cmd
}

func newTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tag vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(cmd.OutOrStdout())
			for _, t := range a.journal().State().ValuesTags {
				fmt.Fprintf(tw, "%s\t%s\n", t, core.PolarityOf(t))
			}
			return tw.Flush()
		},
	}
}

func newNoteCmd(a *app) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "note [text...]",
		Short: "Show or replace a month's retrospective note",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.month(month)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, a.journal().Note(m))
				return nil
			}
			if err := a.journal().SetNote(cmd.Context(), m, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved note for %s\n", format.MonthLabel(m))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default active month)")
	return cmd
}

func newMonthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show or set the active month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				m, err := core.ParseMonthKey(args[0])
				if err != nil {
					return err
				}
				if err := a.journal().SetMonth(cmd.Context(), m); err != nil {
					return err
				}
			}
			printMonth(cmd, a.journal().Month())
			return nil
		},
	}
}

func newNextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Move to the following month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.journal().NextMonth(cmd.Context())
			if err != nil {
				return err
			}
			printMonth(cmd, m)
			return nil
		},
	}
}

func newPrevCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Move to the previous month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.journal().PrevMonth(cmd.Context())
			if err != nil {
				return err
			}
			printMonth(cmd, m)
			return nil
		},
	}
}

func printMonth(cmd *cobra.Command, m core.MonthKey) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", format.MonthLabel(m), m)
}
