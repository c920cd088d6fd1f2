package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/dto"
	"github.com/finbook-app/finbook_backend/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.postEntry)
		entries.POST("/drafts", h.createDraft)
		entries.GET("", h.listEntries)
		entries.POST("/void-by-source", h.voidBySource)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/post", h.postDraft)
		entries.POST("/:entryID/void", h.voidEntry)
	}
}

func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		logger.Warn("Failed to post entry", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	middleware.EntriesPosted.Inc()
	logger.Info("Entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *journalHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return
	}

	entry, err := h.journalService.CreateDraftEntry(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Draft entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *journalHandler) postDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.journalService.PostDraftEntry(c.Request.Context(), tenantID, entryID, userID)
	if err != nil {
		logger.Warn("Failed to post draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		respondWithError(c, err)
		return
	}

	middleware.EntriesPosted.Inc()
	logger.Info("Draft entry posted", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) getEntry(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), tenantID, c.Param("entryID"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	tenantID, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.journalService.ListEntries(c.Request.Context(), tenantID, limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: responses, Limit: limit, Offset: offset})
}

func (h *journalHandler) voidEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.VoidEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for voidEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.journalService.VoidEntry(c.Request.Context(), tenantID, entryID, req.Reason, userID)
	if err != nil {
		logger.Warn("Failed to void entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		respondWithError(c, err)
		return
	}

	middleware.EntriesVoided.Inc()
	logger.Info("Entry voided", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) voidBySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.VoidBySourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for voidBySource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return
	}

	count, err := h.journalService.VoidEntriesBySource(c.Request.Context(), tenantID, req.Source, req.SourceID, userID)
	if err != nil {
		logger.Error("Failed to void entries by source", slog.String("error", err.Error()),
			slog.String("source", req.Source), slog.String("source_id", req.SourceID))
		respondWithError(c, err)
		return
	}

	middleware.EntriesVoided.Add(float64(count))
	logger.Info("Entries voided by source", slog.String("source", req.Source),
		slog.String("source_id", req.SourceID), slog.Int64("voided", count))
	c.JSON(http.StatusOK, dto.VoidBySourceResponse{VoidedCount: count})
}
