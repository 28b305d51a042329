// File: internal/service/authentication.go
package service

import (
	"context"
	stderrors "errors"
	"strings"

	"ecomarket/internal/apperr"
	"ecomarket/internal/database"
	"ecomarket/internal/model"
	"ecomarket/internal/store"

	"github.com/pkg/errors"
)

const (
	msgCredentialsRequired = "username and password are required"
	msgUserNotFound        = "user not found"
	msgIncorrectPassword   = "incorrect password"
)

// AuthenticateUser 以完全相同的 username 查詢並驗證密碼，成功回傳使用者
func AuthenticateUser(ctx context.Context, db database.DB, hasher PasswordHasher, username, password string) (*model.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, apperr.Validation(msgCredentialsRequired)
	}

	// 無法儲存的帳號不可能存在，不必查詢
	if !validText(username) {
		return nil, apperr.Unauthenticated(msgUserNotFound)
	}

	user, err := getUserByUsername(ctx, db, username)
	if stderrors.Is(err, store.ErrNotFound) {
		return nil, apperr.Unauthenticated(msgUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}

	if !hasher.Verify(password, user.PasswordHash) {
		return nil, apperr.Unauthenticated(msgIncorrectPassword)
	}
	return user, nil
}
