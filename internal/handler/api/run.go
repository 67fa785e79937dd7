package api

import (
	"net/http"

	"event-reminder/internal/domain/schedule"
	reqdto "event-reminder/internal/handler/dto/request"
	resdto "event-reminder/internal/handler/dto/response"
	"event-reminder/internal/handler/httperr"
	"event-reminder/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RunHandler struct {
	cmds commands.RunCommands
}

func NewRunHandler(cmds commands.RunCommands) *RunHandler {
	return &RunHandler{cmds: cmds}
}

// @Summary Trigger a reminder run
// @Description Run one pass over every event category and dispatch due reminders
// @Tags runs
// @Accept json
// @Produce json
// @Param request body reqdto.TriggerRunRequest false "Trigger request"
// @Success 200 {object} resdto.RunResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /runs [post]
func (h *RunHandler) Trigger(c *gin.Context) {
	var req reqdto.TriggerRunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	if req.Granularity == "" {
		req.Granularity = schedule.GranularityManual.String()
	}

	granularity, err := schedule.ParseGranularity(req.Granularity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid granularity", nil)
		return
	}

	summary, err := h.cmds.Execute(c.Request.Context(), granularity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Run failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRunSummary(summary))
}
