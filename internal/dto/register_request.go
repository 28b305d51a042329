// File: internal/dto/register_request.go
package dto

// RegisterRequest 註冊表單
// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	// 名字
	FirstName string `form:"first_name" example:"Ana"`
	// 姓氏
	LastName string `form:"last_name" example:"Lee"`
	// 帳號，區分大小寫
	Username string `form:"username" example:"ana1"`
	// Email (會轉為小寫)
	Email string `form:"email" example:"ana@x.com"`
	// 密碼，最多 72 bytes
	Password string `form:"password" example:"secret123"`
}
