// File: internal/dto/login_request.go
package dto

// LoginRequest 登入表單，空白檢查由 service 處理
// swagger:model dto.LoginRequest
type LoginRequest struct {
	Username string `form:"username" example:"ana1"`
	Password string `form:"password" example:"secret123"`
}
