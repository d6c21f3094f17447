package http

import (
	"net/http"

	ucPayment "loanbook-backend/internal/usecase/payment"
	ucReport "loanbook-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	uc      *ucPayment.Usecase
	reports *ucReport.Usecase
}

func NewPaymentHandler(uc *ucPayment.Usecase, reports *ucReport.Usecase) *PaymentHandler {
	return &PaymentHandler{uc: uc, reports: reports}
}

type recordPaymentReq struct {
	ProfileID string `json:"profile_id" validate:"required,hex32"`
	Amount    string `json:"amount" validate:"required,dec2"`
	Notes     string `json:"notes"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid amount"})
	}

	dto, err := h.uc.Record(c.Request().Context(), ucPayment.RecordInput{
		ProfileID: req.ProfileID,
		Amount:    amount,
		Notes:     req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// ListOutstanding backs the payment-entry form: only profiles that still owe.
func (h *PaymentHandler) ListOutstanding(c echo.Context) error {
	dto, err := h.reports.Outstanding(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
