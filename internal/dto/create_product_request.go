// File: internal/dto/create_product_request.go
package dto

// CreateProductRequest 管理頁新增商品表單
// swagger:model dto.CreateProductRequest
type CreateProductRequest struct {
	Name        string `form:"name" example:"Bamboo toothbrush"`
	Description string `form:"description" example:"Compostable handle"`
	// 會轉為小寫
	Category string `form:"category" example:"home"`
	// 可留空；非空時必須是既有使用者的 id
	OwnerID string `form:"owner_id" example:"1"`
}
