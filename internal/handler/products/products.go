// File: internal/handler/products/products.go
package products

import (
	"context"
	"net/http"

	"ecomarket/internal/dto"
	"ecomarket/internal/handler"
	"ecomarket/internal/model"
	"ecomarket/internal/service"

	"github.com/labstack/echo/v4"
)

// Catalog 由 service.ProductCatalog 實作
type Catalog interface {
	List(ctx context.Context, category string) ([]model.Product, error)
	Create(ctx context.Context, in service.CreateProductInput) (*model.Product, error)
}

// ListHandler 列出商品
// @Summary     List products
// @Description 回傳所有商品；帶 category 時只回傳該分類 (不分大小寫)
// @Tags        products
// @Produce     json
// @Param       category query string false "分類"
// @Success     200 {array}  model.Product
// @Failure     500 {object} dto.HTTPError
// @Router      /products [get]
func ListHandler(catalog Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := catalog.List(c.Request().Context(), c.QueryParam("category"))
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// CreateHandler 管理頁新增商品
// @Summary     Create a product
// @Tags        admin
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name        formData string true  "名稱"
// @Param       description formData string false "描述"
// @Param       category    formData string true  "分類"
// @Param       owner_id    formData string false "擁有者 id"
// @Success     303
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /admin/products [post]
func CreateHandler(catalog Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadForm(c)
		}
		_, err := catalog.Create(c.Request().Context(), service.CreateProductInput{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			OwnerID:     req.OwnerID,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.Redirect(http.StatusSeeOther, "/admin/products")
	}
}
