package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ecomarket/internal/apperr"
	"ecomarket/internal/database"
	"ecomarket/internal/model"
	"ecomarket/internal/store"

	"github.com/stretchr/testify/require"
)

// stubHasher 以固定前綴模擬 digest
type stubHasher struct{ err error }

func (s stubHasher) Hash(p string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "hashed:" + p, nil
}

func (s stubHasher) Verify(p, d string) bool { return d == "hashed:"+p }

func validInput() RegisterInput {
	return RegisterInput{FirstName: "Ana", LastName: "Lee", Username: "ana1", Email: "ana@x.com", Password: "secret123"}
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims and hashes", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		users := newMemoryUsers()
		users.install()

		in := RegisterInput{FirstName: "  Ana ", LastName: " Lee", Username: " ana1 ", Email: " Ana@X.com ", Password: " secret123 "}
		u, err := RegisterUser(ctx, nil, stubHasher{}, in)
		require.NoError(t, err)
		require.Equal(t, 1, u.ID)
		require.Equal(t, "Ana", u.FirstName)
		require.Equal(t, "Lee", u.LastName)
		require.Equal(t, "ana1", u.Username)
		require.Equal(t, "ana@x.com", u.Email)
		require.Equal(t, "hashed: secret123 ", u.PasswordHash)
	})

	t.Run("password too long", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMemoryUsers().install()
		in := validInput()
		in.Password = strings.Repeat("x", 73)
		_, err := RegisterUser(ctx, nil, stubHasher{}, in)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		require.Equal(t, msgPasswordTooLong, apperr.MessageOf(err))
	})

	t.Run("password length checked before email", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		in := validInput()
		in.Password = strings.Repeat("x", 100)
		in.Email = "nope"
		_, err := RegisterUser(ctx, nil, stubHasher{}, in)
		require.Equal(t, msgPasswordTooLong, apperr.MessageOf(err))
	})

	t.Run("multibyte password counts characters", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMemoryUsers().install()
		in := validInput()
		in.Password = strings.Repeat("é", 72)
		u, err := RegisterUser(ctx, nil, stubHasher{}, in)
		require.NoError(t, err)
		require.Equal(t, "hashed:"+in.Password, u.PasswordHash)

		in = validInput()
		in.Username = "ana2"
		in.Email = "ana2@x.com"
		in.Password = strings.Repeat("密", 73)
		_, err = RegisterUser(ctx, nil, stubHasher{}, in)
		require.Equal(t, msgPasswordTooLong, apperr.MessageOf(err))
	})

	t.Run("invalid text rejected before store", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		forbidUserStore(t)
		cases := []struct {
			field  string
			mutate func(*RegisterInput)
		}{
			{"username", func(in *RegisterInput) { in.Username = "ana\x00" }},
			{"username", func(in *RegisterInput) { in.Username = "\xff\xfe" }},
			{"first_name", func(in *RegisterInput) { in.FirstName = "\xff\xfe" }},
			{"last_name", func(in *RegisterInput) { in.LastName = "L\x00ee" }},
			{"email", func(in *RegisterInput) { in.Email = "ana\xff@x.com" }},
		}
		for _, c := range cases {
			in := validInput()
			c.mutate(&in)
			_, err := RegisterUser(ctx, nil, stubHasher{}, in)
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err), c.field)
			require.Equal(t, c.field+" contains invalid characters", apperr.MessageOf(err))
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		for _, email := range []string{"", "ana", "ana@", "@x.com", "a b@x.com"} {
			in := validInput()
			in.Email = email
			_, err := RegisterUser(ctx, nil, stubHasher{}, in)
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err), email)
			require.Equal(t, msgInvalidEmail, apperr.MessageOf(err), email)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		blank := []func(*RegisterInput){
			func(in *RegisterInput) { in.FirstName = " " },
			func(in *RegisterInput) { in.LastName = "" },
			func(in *RegisterInput) { in.Username = "   " },
			func(in *RegisterInput) { in.Password = "" },
			func(in *RegisterInput) { in.Username = strings.Repeat("u", 51) },
		}
		for _, mutate := range blank {
			in := validInput()
			mutate(&in)
			_, err := RegisterUser(ctx, nil, stubHasher{}, in)
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		}
	})

	t.Run("username taken", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMemoryUsers().install()
		_, err := RegisterUser(ctx, nil, stubHasher{}, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Email = "other@x.com"
		_, err = RegisterUser(ctx, nil, stubHasher{}, in)
		require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		require.Equal(t, msgUsernameTaken, apperr.MessageOf(err))
	})

	t.Run("email taken", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMemoryUsers().install()
		_, err := RegisterUser(ctx, nil, stubHasher{}, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Username = "ana2"
		in.Email = "ANA@x.com"
		_, err = RegisterUser(ctx, nil, stubHasher{}, in)
		require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		require.Equal(t, msgEmailTaken, apperr.MessageOf(err))
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		notFound := func(context.Context, database.DB, string) (*model.User, error) { return nil, store.ErrNotFound }
		getUserByUsername = notFound
		getUserByEmail = notFound

		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) { return nil, store.ErrUsernameTaken }
		_, err := RegisterUser(ctx, nil, stubHasher{}, validInput())
		require.Equal(t, msgUsernameTaken, apperr.MessageOf(err))

		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) { return nil, store.ErrEmailTaken }
		_, err = RegisterUser(ctx, nil, stubHasher{}, validInput())
		require.Equal(t, msgEmailTaken, apperr.MessageOf(err))

		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) { return nil, errors.New("insert") }
		_, err = RegisterUser(ctx, nil, stubHasher{}, validInput())
		require.Equal(t, apperr.KindUnknown, apperr.KindOf(err))
	})

	t.Run("lookup errors", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) { return nil, errors.New("db") }
		_, err := RegisterUser(ctx, nil, stubHasher{}, validInput())
		require.ErrorContains(t, err, "check username")

		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) { return nil, store.ErrNotFound }
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return nil, errors.New("db") }
		_, err = RegisterUser(ctx, nil, stubHasher{}, validInput())
		require.ErrorContains(t, err, "check email")
	})

	t.Run("hash errors", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMemoryUsers().install()
		_, err := RegisterUser(ctx, nil, stubHasher{err: ErrPasswordTooLong}, validInput())
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

		_, err = RegisterUser(ctx, nil, stubHasher{err: ErrPasswordTooLongBytes}, validInput())
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		require.Equal(t, msgPasswordTooLongBytes, apperr.MessageOf(err))

		_, err = RegisterUser(ctx, nil, stubHasher{err: errors.New("rand")}, validInput())
		require.ErrorContains(t, err, "hash password")
	})
}
