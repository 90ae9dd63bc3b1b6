package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mindful/internal/core"
	"mindful/internal/log"
	"mindful/internal/metrics"
	"mindful/internal/snapshot"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"
	formatAll  = "all"
)

// exportJob writes one export file.
type exportJob struct {
	name  string
	write func(io.Writer) error
}

func newExportCmd(a *app) *cobra.Command {
	var outFormat, outDir, month string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the journal as a JSON snapshot or an entry table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.journal().Export()

			entries := snap.Entries
			scope := "all"
			if month != "" {
				m, err := core.ParseMonthKey(month)
				if err != nil {
					return err
				}
				entries = metrics.MonthEntries(entries, m)
				scope = string(m)
			}
			entries = metrics.SortByDateDesc(entries)

			jobs, err := exportJobs(outFormat, a.journal().Month(), scope, snap, entries)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			var g errgroup.Group
			for _, job := range jobs {
				g.Go(func() error {
					return writeExport(filepath.Join(outDir, job.name), job.write)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			a.logger.InfoContext(cmd.Context(), "Export written", log.FieldFormat, outFormat, log.FieldPath, outDir, log.FieldCount, len(jobs))
			for _, job := range jobs {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Join(outDir, job.name))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFormat, "format", "f", formatJSON, "json, csv, xlsx or all")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&month, "month", "", "limit entry tables to this month (YYYY-MM)")
	return cmd
}

func exportJobs(outFormat string, active core.MonthKey, scope string, snap snapshot.Snapshot, entries []core.Entry) ([]exportJob, error) {
	tableName := "mindful-entries-" + scope
	jsonJob := exportJob{
		name: snapshot.FileName(active),
		write: func(w io.Writer) error {
			data, err := snapshot.Encode(snap)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		},
	}
	csvJob := exportJob{
		name:  tableName + ".csv",
		write: func(w io.Writer) error { return snapshot.WriteCSV(w, entries) },
	}
	xlsxJob := exportJob{
		name:  tableName + ".xlsx",
		write: func(w io.Writer) error { return snapshot.WriteXLSX(w, entries) },
	}

	switch strings.ToLower(outFormat) {
	case formatJSON:
		return []exportJob{jsonJob}, nil
	case formatCSV:
		return []exportJob{csvJob}, nil
	case formatXLSX:
		return []exportJob{xlsxJob}, nil
	case formatAll:
		return []exportJob{jsonJob, csvJob, xlsxJob}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", outFormat)
	}
}

func writeExport(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON snapshot into the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			report, err := a.journal().Import(cmd.Context(), data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(report.Applied) == 0 {
				fmt.Fprintln(out, "Nothing imported")
			}
			for _, f := range report.Applied {
				fmt.Fprintf(out, "Imported %s\n", f)
			}
			if report.Partial() {
				fmt.Fprintf(out, "Skipped %s\n", strings.Join(report.Skipped, ", "))
			}
			return nil
		},
	}
}
