package repository

import (
	"context"

	"github.com/bookhaven/library-service/pkg/kafka"
)

// RecordNotification appends a delivered notification to the audit table.
func (r *repository) RecordNotification(ctx context.Context, event kafka.EventNotification) error {
	query, args, err := qb.Insert("notifications").
		Columns("sent_at", "recipient", "subject", "body").
		Values(event.Timestamp, event.Recipient, event.Subject, event.Body).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.ext.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}
