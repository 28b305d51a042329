// File: internal/view/view.go
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"ecomarket/internal/model"

	"github.com/labstack/echo/v4"
)

const (
	PageLogin         = "login"
	PageRegister      = "register"
	PageMenu          = "menu"
	PageProducts      = "products"
	PageAdminProducts = "admin_products"
)

var pages = []string{PageLogin, PageRegister, PageMenu, PageProducts, PageAdminProducts}

//go:embed templates/*.html
var templateFS embed.FS

// PageData 為所有頁面共用的資料
type PageData struct {
	Title    string
	Username string
	Products []model.Product
}

// Renderer 實作 echo.Renderer，每個頁面各自與 layout 組成一組 template
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
