package service

import (
	"context"
	"errors"
	"testing"

	"ecomarket/internal/apperr"
	"ecomarket/internal/database"
	"ecomarket/internal/model"

	"github.com/stretchr/testify/require"
)

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("blank credentials", func(t *testing.T) {
		for _, pair := range [][2]string{{"", "pw"}, {"ana1", ""}, {"  ", "pw"}, {"ana1", " \t"}} {
			_, err := AuthenticateUser(ctx, nil, stubHasher{}, pair[0], pair[1])
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			require.Equal(t, msgCredentialsRequired, apperr.MessageOf(err))
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMemoryUsers().install()
		_, err := AuthenticateUser(ctx, nil, stubHasher{}, "ghost", "pw")
		require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		require.Equal(t, msgUserNotFound, apperr.MessageOf(err))
	})

	t.Run("invalid username skips lookup", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		forbidUserStore(t)
		for _, name := range []string{"ana\x00", "\xff\xfe"} {
			_, err := AuthenticateUser(ctx, nil, stubHasher{}, name, "pw")
			require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err), "%q", name)
			require.Equal(t, msgUserNotFound, apperr.MessageOf(err))
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByUsername = func(context.Context, database.DB, string) (*model.User, error) { return nil, errors.New("db") }
		_, err := AuthenticateUser(ctx, nil, stubHasher{}, "ana1", "pw")
		require.Equal(t, apperr.KindUnknown, apperr.KindOf(err))
	})

	t.Run("register then login", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		newMemoryUsers().install()
		hasher := cheapArgon2()

		registered, err := RegisterUser(ctx, nil, hasher, validInput())
		require.NoError(t, err)
		require.NotEqual(t, "secret123", registered.PasswordHash)

		u, err := AuthenticateUser(ctx, nil, hasher, "ana1", "secret123")
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)

		_, err = AuthenticateUser(ctx, nil, hasher, "ana1", "wrong")
		require.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		require.Equal(t, msgIncorrectPassword, apperr.MessageOf(err))
	})
}
