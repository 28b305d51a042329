// File: internal/handler/pages/pages.go
package pages

import (
	"context"
	"net/http"

	"ecomarket/internal/handler"
	"ecomarket/internal/middleware"
	"ecomarket/internal/model"
	"ecomarket/internal/view"

	"github.com/labstack/echo/v4"
)

// Lister 由 service.ProductCatalog 實作
type Lister interface {
	List(ctx context.Context, category string) ([]model.Product, error)
}

func pageData(c echo.Context, title string) view.PageData {
	data := view.PageData{Title: title}
	if s, ok := middleware.SessionFrom(c); ok {
		data.Username = s.Username
	}
	return data
}

// Static 渲染不需要資料的頁面 (登入、註冊、選單)
func Static(page, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, page, pageData(c, title))
	}
}

// Products 渲染商品列表頁
func Products(catalog Lister, page, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := catalog.List(c.Request().Context(), "")
		if err != nil {
			return handler.RespondError(c, err)
		}
		data := pageData(c, title)
		data.Products = list
		return c.Render(http.StatusOK, page, data)
	}
}
