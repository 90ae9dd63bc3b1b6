package ledger

import (
	"context"

	"mindful/internal/core"
	"mindful/internal/kv"
	"mindful/internal/log"
)

// NextMonth moves the active month forward and persists it.
func (j *Journal) NextMonth(ctx context.Context) (core.MonthKey, error) {
	next, err := j.state.Month.Next()
	if err != nil {
		return j.state.Month, err
	}
	return next, j.SetMonth(ctx, next)
}

// PrevMonth moves the active month back and persists it.
func (j *Journal) PrevMonth(ctx context.Context) (core.MonthKey, error) {
	prev, err := j.state.Month.Prev()
	if err != nil {
		return j.state.Month, err
	}
	return prev, j.SetMonth(ctx, prev)
}

// SetMonth makes month active. Months without entries are allowed.
func (j *Journal) SetMonth(ctx context.Context, month core.MonthKey) error {
	if _, err := core.ParseMonthKey(string(month)); err != nil {
		return err
	}
	if err := j.save(ctx, kv.FieldLastMonth, month, OpNavigate); err != nil {
		return err
	}
	j.state.Month = month
	j.logger.DebugContext(ctx, "Month changed", log.FieldMonth, month)
	return nil
}
