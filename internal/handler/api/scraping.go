package api

import (
	"net/http"

	"creator-market/internal/domain/cooldown"
	"creator-market/internal/domain/scraping"
	reqdto "creator-market/internal/handler/dto/request"
	resdto "creator-market/internal/handler/dto/response"
	"creator-market/internal/handler/httperr"
	"creator-market/internal/pkg/errs"
	"creator-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScrapingHandler struct {
	cmds commands.ScrapingCommands
}

func NewScrapingHandler(cmds commands.ScrapingCommands) *ScrapingHandler {
	return &ScrapingHandler{cmds: cmds}
}

// @Summary Start scraping run
// @Description Arms the engine cooldown and hands the batch to the scraping service
// @Tags scraping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param engine path string true "Engine (google, bing)"
// @Param request body reqdto.StartScrapingRunRequest true "Batch configuration"
// @Success 202 {object} resdto.ScrapingRunResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/scraping/{engine}/runs [post]
func (h *ScrapingHandler) StartRun(c *gin.Context) {
	engine, ok := engineParam(c)
	if !ok {
		return
	}
	var req reqdto.StartScrapingRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.StartRun(c.Request.Context(), engine, req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCooldownActive):
			h.abortCooldownActive(c, engine, err)
		case errs.Is(err, commands.ErrDispatchFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Scraping service unavailable", resdto.FromStartRunResult(result))
		case errs.Is(err, scraping.ErrEmptyKeywords), errs.Is(err, scraping.ErrInvalidMaxSize):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errs.Is(err, cooldown.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cooldown is misconfigured", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromStartRunResult(result))
}

// @Summary Get cooldown
// @Description Current cooldown of the engine's run button
// @Tags scraping
// @Produce json
// @Security BearerAuth
// @Param engine path string true "Engine (google, bing)"
// @Success 200 {object} resdto.CooldownResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/scraping/{engine}/cooldown [get]
func (h *ScrapingHandler) GetCooldown(c *gin.Context) {
	engine, ok := engineParam(c)
	if !ok {
		return
	}
	view, err := h.cmds.CooldownStatus(c.Request.Context(), engine)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cooldown", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCooldownView(engine, view))
}

// @Summary Dismiss cooldown
// @Description Clears the engine cooldown regardless of remaining time
// @Tags scraping
// @Security BearerAuth
// @Param engine path string true "Engine (google, bing)"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/scraping/{engine}/cooldown [delete]
func (h *ScrapingHandler) DismissCooldown(c *gin.Context) {
	engine, ok := engineParam(c)
	if !ok {
		return
	}
	if err := h.cmds.DismissCooldown(c.Request.Context(), engine); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to dismiss cooldown", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScrapingHandler) abortCooldownActive(c *gin.Context, engine scraping.Engine, cause error) {
	view, err := h.cmds.CooldownStatus(c.Request.Context(), engine)
	if err != nil || !view.Running {
		httperr.AbortWithError(c, http.StatusTooManyRequests, cause, "Cooldown active", nil)
		return
	}
	httperr.AbortRetryLater(c, http.StatusTooManyRequests, cause, "Cooldown active", view.Remaining, resdto.FromCooldownView(engine, view))
}

func engineParam(c *gin.Context) (scraping.Engine, bool) {
	engine, err := scraping.NewEngine(c.Param("engine"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown engine", nil)
		return "", false
	}
	return engine, true
}
