package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Info handles GET /api and describes the available endpoints so a
// client poking at the API root gets something useful.
func Info(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "BMI tracker API is up",
		"routes": []string{
			"GET  /api - this endpoint",
			"POST /api/bmi - create a BMI measurement",
			"GET  /api/bmi/:user_id - list a user's measurements",
			"GET  /api/bmi/:user_id/latest - latest measurement",
			"GET  /healthz - health check",
		},
		"timestamp": time.Now().UTC(),
	})
}
