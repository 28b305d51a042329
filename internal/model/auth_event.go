// File: internal/model/auth_event.go
package model

import "time"

const (
	AuthEventRegister = "register"
	AuthEventLogin    = "login"
)

// AuthEvent 記錄一次註冊或登入嘗試
type AuthEvent struct {
	ID        int64     `db:"id" json:"id"`
	Kind      string    `db:"kind" json:"kind"`
	Username  string    `db:"username" json:"username"`
	Success   bool      `db:"success" json:"success"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
