package api

import (
	"context"
	"net/http"
	"strconv"

	resdto "creator-market/internal/handler/dto/response"
	"creator-market/internal/handler/httperr"
	"creator-market/internal/pkg/errs"
	"creator-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sseEventTick    = "tick"
	sseEventStarted = "started"
)

type CampaignHandler struct {
	q queries.CampaignQueries
}

func NewCampaignHandler(q queries.CampaignQueries) *CampaignHandler {
	return &CampaignHandler{q: q}
}

// @Summary List campaigns
// @Description Storefront campaign list with derived display status and countdown
// @Tags campaigns
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.CampaignListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = queries.ClampLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListCampaigns(c.Request.Context(), cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list campaigns", nil)
		return
	}

	res, err := resdto.FromCampaignList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Campaign lifecycle
// @Description Display status and countdown of a campaign evaluated now
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.LifecycleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/campaigns/{id}/lifecycle [get]
func (h *CampaignHandler) Lifecycle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	lc, err := h.q.GetLifecycle(c.Request.Context(), id)
	if err != nil {
		abortCampaignError(c, err)
		return
	}

	res, err := resdto.FromCampaignLifecycle(lc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Stream campaign countdown
// @Description Server-Sent Events: a "tick" event every second until the campaign starts, then one "started" event
// @Tags campaigns
// @Produce text/event-stream
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CountdownEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/campaigns/{id}/countdown/stream [get]
func (h *CampaignHandler) StreamCountdown(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	streaming := false
	emit := func(ev queries.CountdownEvent) {
		if !streaming {
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Header("X-Accel-Buffering", "no")
			streaming = true
		}
		name := sseEventTick
		if ev.Started {
			name = sseEventStarted
		}
		c.SSEvent(name, resdto.FromCountdownEvent(ev))
		c.Writer.Flush()
	}

	err = h.q.WatchCountdown(c.Request.Context(), id, emit)
	if err == nil || errs.Is(err, context.Canceled) {
		return
	}
	if !streaming {
		abortCampaignError(c, err)
		return
	}
	// headers are gone; record for the logger only
	_ = c.Error(err)
}

func abortCampaignError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrCampaignNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Campaign not found", nil)
	case errs.Is(err, queries.ErrInvalidSchedule):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Campaign schedule is invalid", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
