package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"
	paymentDomain "loanbook-backend/internal/domain/payment"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeDomainError maps usecase errors onto the response surface:
// not-found is 404, field validation 400, overpayment 422.
func writeDomainError(c echo.Context, err error) error {
	var ve *loanDomain.ValidationError
	var ope *paymentDomain.OverpaymentError
	switch {
	case errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "loan profile not found"})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Reason}},
		})
	case errors.As(err, &ope):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":            ope.Error(),
			"remaining_amount": ope.Remaining,
		})
	default:
		log.Printf("http: %s %s: unhandled error: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
