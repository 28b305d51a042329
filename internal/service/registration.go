// File: internal/service/registration.go
package service

import (
	"context"
	stderrors "errors"
	"strings"
	"unicode/utf8"

	"ecomarket/internal/apperr"
	"ecomarket/internal/database"
	"ecomarket/internal/model"
	"ecomarket/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	msgPasswordTooLong      = "password must not exceed 72 characters"
	msgPasswordTooLongBytes = "password must not exceed 72 bytes"
	msgInvalidEmail         = "invalid email address"
	msgUsernameTaken        = "username is already taken"
	msgEmailTaken           = "email is already registered"
)

var validate = validator.New()

var (
	getUserByUsername = store.GetUserByUsername
	getUserByEmail    = store.GetUserByEmail
	createUser        = store.CreateUser
)

// RegisterInput 為註冊表單的原始內容
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// normalize 去除前後空白並將 email 轉為小寫，密碼保持原樣
func (in RegisterInput) normalize() RegisterInput {
	return RegisterInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Username:  strings.TrimSpace(in.Username),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  in.Password,
	}
}

// validText 擋下資料庫無法儲存的內容：不合法的 UTF-8 與 NUL
func validText(v string) bool {
	return utf8.ValidString(v) && !strings.ContainsRune(v, 0)
}

// checkRaw 在正規化之前檢查：密碼長度優先，再擋下無法儲存的文字
func (in RegisterInput) checkRaw() error {
	if passwordTooLong(in.Password) {
		return apperr.Validation(msgPasswordTooLong)
	}
	for _, f := range []struct{ name, value string }{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"username", in.Username},
		{"email", in.Email},
	} {
		if !validText(f.value) {
			return apperr.Validation(f.name + " contains invalid characters")
		}
	}
	return nil
}

func (in RegisterInput) check() error {
	fields := []struct {
		name, value, rule string
	}{
		{"first_name", in.FirstName, "required,max=50"},
		{"last_name", in.LastName, "required,max=50"},
		{"username", in.Username, "required,max=50"},
		{"password", in.Password, "required"},
	}
	for _, f := range fields {
		if err := validate.Var(f.value, f.rule); err != nil {
			return apperr.Validation(f.name + " is required and must be at most 50 characters")
		}
	}
	if err := validate.Var(in.Email, "required,email,max=100"); err != nil {
		return apperr.Validation(msgInvalidEmail)
	}
	return nil
}

// RegisterUser 驗證輸入、檢查 username/email 是否重複、雜湊密碼後建立使用者。
// 事先查詢只為了回傳友善訊息，真正保證唯一的是資料表的 unique constraint。
func RegisterUser(ctx context.Context, db database.DB, hasher PasswordHasher, in RegisterInput) (*model.User, error) {
	if err := in.checkRaw(); err != nil {
		return nil, err
	}
	in = in.normalize()
	if err := in.check(); err != nil {
		return nil, err
	}

	if _, err := getUserByUsername(ctx, db, in.Username); err == nil {
		return nil, apperr.Conflict(msgUsernameTaken)
	} else if !stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.Wrap(err, "check username")
	}

	if _, err := getUserByEmail(ctx, db, in.Email); err == nil {
		return nil, apperr.Conflict(msgEmailTaken)
	} else if !stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.Wrap(err, "check email")
	}

	hash, err := hasher.Hash(in.Password)
	switch {
	case stderrors.Is(err, ErrPasswordTooLong):
		return nil, apperr.Validation(msgPasswordTooLong)
	case stderrors.Is(err, ErrPasswordTooLongBytes):
		return nil, apperr.Validation(msgPasswordTooLongBytes)
	}
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user, err := createUser(ctx, db, &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	switch {
	case stderrors.Is(err, store.ErrUsernameTaken):
		return nil, apperr.Conflict(msgUsernameTaken)
	case stderrors.Is(err, store.ErrEmailTaken):
		return nil, apperr.Conflict(msgEmailTaken)
	case err != nil:
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}
