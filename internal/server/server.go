package server

import (
	"net/http"

	"loja/internal/config"
	"loja/internal/handler"
	"loja/internal/middleware"
	"loja/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// ルーティングに必要な依存をまとめる
type Deps struct {
	Cfg      config.Config
	UserRepo repository.UserRepository

	AuthH    *handler.AuthHandler
	ProductH *handler.ProductHandler
	CartH    *handler.CartHandler
	OrderH   *handler.OrderHandler
	AddressH *handler.AddressHandler
}

// echoを組み立てて返す
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.NewGeneralRateLimiter().Middleware())

	//CORSはフロントのoriginのみ許可
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{d.Cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Idempotency-Key", "X-CSRF-Token"},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	//認証系だけ厳しいレート制限をかける
	strictRL := middleware.NewStrictRateLimiter().Middleware()

	d.AuthH.RegisterRoutes(e, d.Cfg, d.UserRepo, strictRL)
	d.ProductH.RegisterRoutes(e)
	d.CartH.RegisterRoutes(e, d.Cfg, d.UserRepo)
	d.OrderH.RegisterRoutes(e, d.Cfg, d.UserRepo)
	d.AddressH.RegisterRoutes(e, d.Cfg, d.UserRepo)

	return e
}

// addrで待ち受ける
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
