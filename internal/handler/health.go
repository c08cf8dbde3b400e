package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zphs-kuchanpally/ai-buddy/internal/model"
)

// Health is the load-balancer health check.  It returns a plain text "ok".
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root answers GET / with the service banner.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Message{Message: "ZPHS Kuchanpally AI Buddy Backend"})
}

// Hello answers GET /api/hello.
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Message{Message: "Hello from the backend API!"})
}
