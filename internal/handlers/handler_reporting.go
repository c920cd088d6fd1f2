package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/dto"
	"github.com/finbook-app/finbook_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/general-ledger", h.generalLedger)
	}
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	asOf, err := parseDateQuery(c, "asOf", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "asOf must be formatted as YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID, asOf)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	asOf, err := parseDateQuery(c, "asOf", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "asOf must be formatted as YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), tenantID, asOf)
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

func (h *reportingHandler) generalLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	start, err := parseDateQuery(c, "from", time.Time{})
	if err != nil || start.IsZero() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "from is required and must be formatted as YYYY-MM-DD"})
		return
	}
	end, err := parseDateQuery(c, "to", time.Time{})
	if err != nil || end.IsZero() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "to is required and must be formatted as YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), tenantID, c.Query("accountID"), start, end)
	if err != nil {
		logger.Error("Failed to build general ledger", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(report))
}
