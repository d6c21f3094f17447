package http

import (
	"net/http"

	ucLoan "loanbook-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *ucLoan.Usecase }

func NewLoanHandler(uc *ucLoan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanProfileReq struct {
	Name          string `json:"name" validate:"required,max=200"`
	TotalAmount   string `json:"total_amount" validate:"required,dec2"`
	LoanEntryDate string `json:"loan_entry_date" validate:"omitempty,dateonly"`
}

func (r loanProfileReq) toInput() (ucLoan.ProfileInput, error) {
	amount, err := decimal.NewFromString(r.TotalAmount)
	if err != nil {
		return ucLoan.ProfileInput{}, err
	}
	return ucLoan.ProfileInput{
		Name:          r.Name,
		TotalAmount:   amount,
		LoanEntryDate: r.LoanEntryDate,
	}, nil
}

func bindProfileReq(c echo.Context) (*loanProfileReq, error) {
	var req loanProfileReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return &req, nil
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	loans, err := h.uc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": loans})
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	req, err := bindProfileReq(c)
	if req == nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid total_amount"})
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("profile_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	req, err := bindProfileReq(c)
	if req == nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid total_amount"})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("profile_id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("profile_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
