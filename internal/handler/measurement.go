// Package handler exposes the HTTP handlers of the API. Handlers only
// translate between HTTP and the service layer: they bind and coerce
// request bodies, invoke the service and map error kinds onto status
// codes. No business rule lives here.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bmi-tracker/internal/repository"
	"github.com/iliyamo/bmi-tracker/internal/service"
)

// MeasurementHandler bundles dependencies for the measurement endpoints.
type MeasurementHandler struct {
	Svc *service.MeasurementService
	Env string // "prod" suppresses internal error detail in responses
}

func NewMeasurementHandler(svc *service.MeasurementService, env string) *MeasurementHandler {
	return &MeasurementHandler{Svc: svc, Env: env}
}

// ----- DTOs -----

// numeric accepts a JSON number or a JSON string holding a number.
// Clients (notably HTML forms posted through fetch) routinely send
// numeric fields as strings, so the coercion happens here, before any
// business logic sees the value. A string that does not parse as a
// number coerces to 0 so the positivity check rejects it.
type numeric struct {
	set   bool
	value float64
}

func (n *numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			n.set = true
			return nil
		}
		n.set, n.value = true, v
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.set, n.value = true, v
	return nil
}

// ptr returns the coerced value, or nil when the field was absent.
func (n numeric) ptr() *float64 {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

type createReq struct {
	UserID string  `json:"user_id"`
	Height numeric `json:"height"`
	Weight numeric `json:"weight"`
	Age    numeric `json:"age"`
}

// Create handles POST /api/bmi. It stores one measurement and returns
// the persisted record with a 201 status.
func (h *MeasurementHandler) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Svc.Create(ctx, service.CreateInput{
		UserID: strings.TrimSpace(req.UserID),
		Height: req.Height.ptr(),
		Weight: req.Weight.ptr(),
		Age:    req.Age.ptr(),
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Reason})
		}
		return h.internalError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// ListByUser handles GET /api/bmi/:user_id. It returns the user's
// measurements newest first; a user with no records gets an empty array.
func (h *MeasurementHandler) ListByUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Svc.ListByUser(ctx, c.Param("user_id"))
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// LatestByUser handles GET /api/bmi/:user_id/latest. It returns the
// most recent measurement or 404 when the user has none.
func (h *MeasurementHandler) LatestByUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Svc.LatestByUser(ctx, c.Param("user_id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no BMI records found"})
		}
		return h.internalError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// internalError logs the full error server-side and answers 500. In
// prod the response carries a generic message so internals never leak
// to clients; elsewhere the real message helps during development.
func (h *MeasurementHandler) internalError(c echo.Context, err error) error {
	log.Printf("handler: %s %s failed: %v", c.Request().Method, c.Path(), err)
	msg := "internal server error"
	if h.Env != "prod" {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
}
