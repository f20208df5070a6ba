package handlers

import (
	"errors"
	"net/http"

	"controlling_oven/internal/oven"
	"controlling_oven/internal/repository"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusCompleted = "completed"
	statusFailed    = "failed"

	errRunProgram      = "failed to run program"
	errGetRun          = "failed to load run snapshot"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include the current run snapshot if available (best-effort).
func (h *Handler) respondWithStatusAndRun(c *gin.Context, httpCode int, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	if run, err := h.services.Monitoring.GetRun(ctx); err == nil {
		resp["run"] = run
	}
	c.JSON(httpCode, resp)
}

// Request DTO for starting a run.
type runRequest struct {
	ProgramID string `json:"program_id" binding:"required"`
}

// RunRequest is an exported model for Swagger docs of the run payload.
type RunRequest struct {
	// Id of the stored baking program to execute
	ProgramID string `json:"program_id" example:"6f9a1f0e-8c1f-4d7b-9f6e-2a9a9d1f0c11"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Run a baking program
// @Description  Executes the program synchronously and returns the final run snapshot
// @Tags         oven
// @Accept       json
// @Produce      json
// @Param        body  body   RunRequest  true  "Run payload"
// @Success      200   {object}  map[string]interface{}  "status, run"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}  "status, error, run"
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/oven/run [post]
// @Security     BearerAuth
func (h *Handler) runProgram(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	ctx := c.Request.Context()
	err := h.services.Baker.Run(ctx, req.ProgramID)
	switch {
	case err == nil:
		h.respondWithStatusAndRun(c, http.StatusOK, statusCompleted, gin.H{"program_id": req.ProgramID})
	case errors.Is(err, repository.ErrProgramNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isOvenFailure(err):
		if h.log != nil {
			h.log.Errorw("oven_run_failed", "err", err, "program_id", req.ProgramID)
		}
		h.respondWithStatusAndRun(c, http.StatusUnprocessableEntity, statusFailed, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errRunProgram, "oven_run_error", err, "program_id", req.ProgramID)
	}
}

// isOvenFailure reports whether err is the domain error of an aborted run.
func isOvenFailure(err error) bool {
	var ovenErr *oven.OvenError
	return errors.As(err, &ovenErr)
}

// @Summary      Get latest run snapshot
// @Tags         oven
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/oven/run [get]
// @Security     BearerAuth
func (h *Handler) getRun(c *gin.Context) {
	ctx := c.Request.Context()
	run, err := h.services.Monitoring.GetRun(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetRun, "oven_get_run_failed", err)
		return
	}
	c.JSON(http.StatusOK, run)
}
