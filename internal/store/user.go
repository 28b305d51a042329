package store

import (
	"context"

	"ecomarket/internal/database"
	"ecomarket/internal/model"

	"github.com/pkg/errors"
)

const userColumns = `id, first_name, last_name, username, email, password_hash, created_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func getUserBy(ctx context.Context, db database.DB, op, column string, value any) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+column+` = $1`,
		value,
	)
	u, err := scanUser(row)
	if isNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	return u, nil
}

// GetUserByUsername 以完全相同的 username 查詢
func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	return getUserBy(ctx, db, "GetUserByUsername", "username", username)
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	return getUserBy(ctx, db, "GetUserByEmail", "email", email)
}

// CreateUser 寫入使用者；違反唯一鍵時回傳 ErrUsernameTaken / ErrEmailTaken
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, username, email, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.FirstName,
		u.LastName,
		u.Username,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if code, constraint, ok := pgError(err); ok && code == uniqueViolation {
			switch constraint {
			case "users_username_key":
				return nil, ErrUsernameTaken
			case "users_email_key":
				return nil, ErrEmailTaken
			}
		}
		return nil, errors.Wrap(err, "CreateUser")
	}
	return u, nil
}
