// File: internal/service/password.go
package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength 是可接受的明文密碼最大字元數 (rune)
const MaxPasswordLength = 72

// bcryptMaxBytes 是 bcrypt 本身的上限，多位元組字元可能在 72 字元內就超過
const bcryptMaxBytes = 72

var (
	ErrPasswordTooLong      = errors.New("password exceeds 72 characters")
	ErrPasswordTooLongBytes = errors.New("password exceeds 72 bytes")
)

func passwordTooLong(password string) bool {
	return utf8.RuneCountInString(password) > MaxPasswordLength
}

// PasswordHasher 負責單向雜湊與驗證密碼
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify 在密碼不符或 digest 格式錯誤時回傳 false
	Verify(password, digest string) bool
}

var (
	randRead                     = rand.Read
	argon2IDKey                  = argon2.IDKey
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// NewPasswordHasher 依名稱選擇演算法，空字串等同 argon2id
func NewPasswordHasher(name string) (PasswordHasher, error) {
	switch name {
	case "", "argon2id":
		return NewArgon2Hasher(), nil
	case "bcrypt":
		return &BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, errors.Errorf("unknown password hasher %q", name)
	}
}

const (
	argon2MaxMemory  = 1 << 20 // KiB
	argon2MaxTime    = 16
	argon2MaxKeySize = 128
)

var b64 = base64.RawStdEncoding

// Argon2Hasher 產生 PHC 格式的 argon2id digest:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type Argon2Hasher struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	if passwordTooLong(password) {
		return "", ErrPasswordTooLong
	}
	salt := make([]byte, h.SaltLen)
	if _, err := randRead(salt); err != nil {
		return "", errors.Wrap(err, "read salt")
	}
	key := argon2IDKey([]byte(password), salt, h.Time, h.Memory, h.Threads, h.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.Memory, h.Time, h.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key),
	), nil
}

func (h *Argon2Hasher) Verify(password, digest string) bool {
	if passwordTooLong(password) {
		return false
	}
	p, err := decodeArgon2(digest)
	if err != nil {
		return false
	}
	other := argon2IDKey([]byte(password), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(p.key, other) == 1
}

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func decodeArgon2(digest string) (*argon2Params, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, errors.New("not an argon2id digest")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, errors.New("unsupported argon2 version")
	}

	var m, t, p uint64
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return nil, errors.Wrap(err, "argon2 params")
	}
	if m == 0 || m > argon2MaxMemory || t == 0 || t > argon2MaxTime || p == 0 || p > 255 {
		return nil, errors.New("argon2 params out of range")
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return nil, errors.New("argon2 salt")
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > argon2MaxKeySize {
		return nil, errors.New("argon2 key")
	}

	return &argon2Params{memory: uint32(m), time: uint32(t), threads: uint8(p), salt: salt, key: key}, nil
}

// BcryptHasher 使用 bcrypt，Cost 為 0 時採用 bcrypt.DefaultCost
type BcryptHasher struct {
	Cost int
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if passwordTooLong(password) {
		return "", ErrPasswordTooLong
	}
	if len(password) > bcryptMaxBytes {
		return "", ErrPasswordTooLongBytes
	}
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}
	return string(hashBytes), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcryptCompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
