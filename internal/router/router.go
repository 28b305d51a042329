// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ecomarket/internal/cache"
	"ecomarket/internal/database"
	"ecomarket/internal/handler"
	"ecomarket/internal/handler/auth"
	"ecomarket/internal/handler/pages"
	"ecomarket/internal/handler/products"
	"ecomarket/internal/middleware"
	"ecomarket/internal/service"
	"ecomarket/internal/view"
)

// Deps 為路由所需的共用資源，由 cmd/service 建立一次
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Hasher   service.PasswordHasher
	Sessions *service.SessionManager
	Catalog  *service.ProductCatalog
	Audit    *service.AuditRecorder

	CookieSecure        bool
	AdminRequireSession bool
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.Use(middleware.LoadSession(d.Sessions))

	// 頁面
	e.GET("/", pages.Static(view.PageLogin, "Log in"))
	e.GET("/login", pages.Static(view.PageLogin, "Log in"))
	e.GET("/register", pages.Static(view.PageRegister, "Register"))
	e.GET("/menu", pages.Static(view.PageMenu, "Menu"), middleware.RequireSession)
	e.GET("/products-page", pages.Products(d.Catalog, view.PageProducts, "Products"))

	// 帳號
	e.POST("/register", auth.RegisterHandler(d.DB, d.Hasher, d.Audit))
	e.POST("/login", auth.LoginHandler(d.DB, d.Hasher, d.Sessions, d.Audit, d.CookieSecure))
	e.POST("/logout", auth.LogoutHandler(d.Sessions, d.CookieSecure))

	// 商品
	e.GET("/products", products.ListHandler(d.Catalog))

	// 管理頁預設開放，可用設定改為需要登入
	var adminMW []echo.MiddlewareFunc
	if d.AdminRequireSession {
		adminMW = append(adminMW, middleware.RequireSession)
	}
	admin := e.Group("/admin", adminMW...)
	admin.GET("/products", pages.Products(d.Catalog, view.PageAdminProducts, "Manage products"))
	admin.POST("/products", products.CreateHandler(d.Catalog))

	// 健康檢查
	e.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
