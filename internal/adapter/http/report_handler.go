package http

import (
	"net/http"

	ucReport "loanbook-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *ucReport.Usecase }

func NewReportHandler(uc *ucReport.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Overview(c echo.Context) error {
	dto, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) LoanHistory(c echo.Context) error {
	dto, err := h.uc.History(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
