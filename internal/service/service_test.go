package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"testing"
	"time"

	"ecomarket/internal/database"
	"ecomarket/internal/model"
	"ecomarket/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	randRead = rand.Read
	argon2IDKey = argon2.IDKey
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	getUserByUsername = store.GetUserByUsername
	getUserByEmail = store.GetUserByEmail
	createUser = store.CreateUser
	listProducts = store.ListProducts
	createProduct = store.CreateProduct
	insertAuthEvent = store.InsertAuthEvent
	timeNow = time.Now
	newSessionID = uuid.NewString
	jsonMarshal = json.Marshal
	parseWithClaims = jwt.ParseWithClaims
}

// cheapArgon2 讓測試不必每次配置 64 MiB
func cheapArgon2() *Argon2Hasher {
	return &Argon2Hasher{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16}
}

// memoryUsers 以 map 模擬 users 資料表，含 username/email 唯一限制
type memoryUsers struct {
	byName map[string]model.User
	nextID int
}

// forbidUserStore 讓任何使用者查詢或寫入直接使測試失敗
func forbidUserStore(t *testing.T) {
	lookup := func(context.Context, database.DB, string) (*model.User, error) {
		t.Fatal("user store must not be queried")
		return nil, nil
	}
	getUserByUsername = lookup
	getUserByEmail = lookup
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		t.Fatal("user store must not be written")
		return nil, nil
	}
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byName: map[string]model.User{}, nextID: 1}
}

func (m *memoryUsers) install() {
	getUserByUsername = func(_ context.Context, _ database.DB, username string) (*model.User, error) {
		u, ok := m.byName[username]
		if !ok {
			return nil, store.ErrNotFound
		}
		return &u, nil
	}
	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		for _, u := range m.byName {
			if u.Email == email {
				return &u, nil
			}
		}
		return nil, store.ErrNotFound
	}
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		if _, ok := m.byName[u.Username]; ok {
			return nil, store.ErrUsernameTaken
		}
		for _, existing := range m.byName {
			if existing.Email == u.Email {
				return nil, store.ErrEmailTaken
			}
		}
		u.ID = m.nextID
		u.CreatedAt = time.Now().UTC()
		m.nextID++
		m.byName[u.Username] = *u
		return u, nil
	}
}
