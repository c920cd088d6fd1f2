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

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
	seedService    portssvc.SeedSvcFacade
}

func newAccountHandler(accountService portssvc.AccountSvcFacade, ledgerService portssvc.LedgerSvcFacade, seedService portssvc.SeedSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
		seedService:    seedService,
	}
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, ledgerService portssvc.LedgerSvcFacade, seedService portssvc.SeedSvcFacade) {
	h := newAccountHandler(accountService, ledgerService, seedService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/seed", h.seedChart)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.POST("/:accountID/deactivate", h.deactivateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
		accounts.GET("/:accountID/balance", h.getBalance)
		accounts.GET("/:accountID/activity", h.getActivity)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		logger.Warn("Failed to create account", slog.String("error", err.Error()), slog.String("code", req.Code))
		respondWithError(c, err)
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	activeOnly := c.Query("activeOnly") == "true"
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), tenantID, activeOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountResponses(accounts)})
}

func (h *accountHandler) getAccount(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), tenantID, c.Param("accountID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), tenantID, c.Param("accountID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) deactivateAccount(c *gin.Context) {
	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), tenantID, c.Param("accountID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	accountID := c.Param("accountID")
	if err := h.accountService.DeleteAccount(c.Request.Context(), tenantID, accountID); err != nil {
		logger.Warn("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		respondWithError(c, err)
		return
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

func (h *accountHandler) seedChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	created, err := h.seedService.SeedChartOfAccounts(c.Request.Context(), tenantID, userID)
	if err != nil {
		logger.Error("Failed to seed chart of accounts", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	logger.Info("Chart of accounts seeded", slog.Int("created", created))
	c.JSON(http.StatusOK, dto.SeedResponse{Created: created})
}

func (h *accountHandler) getBalance(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	asOf, err := parseDateQuery(c, "asOf", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "asOf must be formatted as YYYY-MM-DD"})
		return
	}

	accountID := c.Param("accountID")
	balance, err := h.ledgerService.BalanceAsOf(c.Request.Context(), tenantID, accountID, asOf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		AsOf:      asOf.Format(time.DateOnly),
		Balance:   balance,
	})
}

func (h *accountHandler) getActivity(c *gin.Context) {
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

	accountID := c.Param("accountID")
	rows, err := h.ledgerService.ActivityInRange(c.Request.Context(), tenantID, accountID, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActivityResponse{
		AccountID: accountID,
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
		Rows:      dto.ToActivityRowResponses(rows),
	})
}
