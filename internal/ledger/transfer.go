package ledger

import (
	"context"

	"mindful/internal/kv"
	"mindful/internal/log"
	"mindful/internal/snapshot"
)

// ImportReport lists which fields an import replaced and which it skipped.
type ImportReport struct {
	Applied []kv.Field
	Skipped []string
}

// Partial reports whether the document had fields that were not applied.
func (r ImportReport) Partial() bool {
	return len(r.Skipped) > 0
}

// Export returns the portable snapshot of the current state.
func (j *Journal) Export() snapshot.Snapshot {
	s := j.State()
	return snapshot.Snapshot{
		Entries:    s.Entries,
		Categories: s.Categories,
		ValuesTags: s.ValuesTags,
		Notes:      s.Notes,
	}
}

// Import applies a snapshot document field by field in the order entries,
// categories, tags, notes. Fields missing from the document or of the wrong
// shape are skipped. A write failure stops the import; fields applied before
// it stay applied.
func (j *Journal) Import(ctx context.Context, data []byte) (ImportReport, error) {
	patch, err := snapshot.Decode(data)
	if err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{Skipped: patch.Skipped}
	if patch.Entries != nil {
		if err := j.save(ctx, kv.FieldEntries, *patch.Entries, OpImport); err != nil {
			return report, err
		}
		j.state.Entries = *patch.Entries
		report.Applied = append(report.Applied, kv.FieldEntries)
	}
	if patch.Categories != nil {
		if err := j.save(ctx, kv.FieldCategories, *patch.Categories, OpImport); err != nil {
			return report, err
		}
		j.state.Categories = *patch.Categories
		report.Applied = append(report.Applied, kv.FieldCategories)
	}
	if patch.ValuesTags != nil {
		if err := j.save(ctx, kv.FieldValuesTags, *patch.ValuesTags, OpImport); err != nil {
			return report, err
		}
		j.state.ValuesTags = *patch.ValuesTags
		report.Applied = append(report.Applied, kv.FieldValuesTags)
	}
	if patch.Notes != nil {
		if err := j.save(ctx, kv.FieldNotes, *patch.Notes, OpImport); err != nil {
			return report, err
		}
		j.state.Notes = *patch.Notes
		report.Applied = append(report.Applied, kv.FieldNotes)
	}

	j.logger.InfoContext(ctx, "Snapshot imported",
		"applied", len(report.Applied),
		"skipped", len(report.Skipped),
		log.FieldOperation, string(OpImport))
	return report, nil
}
