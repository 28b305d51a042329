package store

import (
	"context"

	"ecomarket/internal/database"
	"ecomarket/internal/model"

	"github.com/pkg/errors"
)

func InsertAuthEvent(ctx context.Context, db database.DB, ev *model.AuthEvent) error {
	row := db.QueryRow(ctx,
		`INSERT INTO auth_events (kind, username, success, reason)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		ev.Kind,
		ev.Username,
		ev.Success,
		ev.Reason,
	)
	if err := row.Scan(&ev.ID, &ev.CreatedAt); err != nil {
		return errors.Wrap(err, "InsertAuthEvent")
	}
	return nil
}
