package router

import (
	"net/http"
	"strings"

	"todo-api-backend/pkg/adapter/controller"
	"todo-api-backend/pkg/infrastructure/router/handler"
	appmiddleware "todo-api-backend/pkg/infrastructure/router/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Path of route
const (
	HealthCheckPath = "/health_check"
	TodosPath       = "/todos/"
	TodoPath        = TodosPath + ":id/"
)

const defaultBodyLimit = "1M"

// Options of router
type Options struct {
	BodyLimit string
}

// New creates route endpoint
func New(ctrl controller.Controller, log *zap.SugaredLogger, options Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = JSONSerializer{}

	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, strings.TrimSuffix(TodosPath, "/"))
		},
	}))

	bodyLimit := options.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return ulid.Make().String()
		},
	}))
	e.Use(appmiddleware.RequestLogger(log))
	e.Use(appmiddleware.ContextLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
	}))
	e.Use(middleware.BodyLimit(bodyLimit))

	e.GET(HealthCheckPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h := handler.NewTodoHandler(ctrl)
	e.GET(TodosPath, h.List)
	e.POST(TodosPath, h.Create)
	e.GET(TodoPath, h.Get)
	e.PUT(TodoPath, h.Update)
	e.DELETE(TodoPath, h.Delete)

	return e
}
