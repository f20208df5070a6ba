package handlers

import (
	"errors"
	"net/http"

	"controlling_oven/internal/repository"
	"controlling_oven/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTOs for program creation.
type stageRequest struct {
	TargetTemp int    `json:"target_temp"`
	StageTime  int    `json:"stage_time"`
	Heat       string `json:"heat" binding:"required"`
}

type programRequest struct {
	Name         string         `json:"name" binding:"required"`
	InitialTemp  int            `json:"initial_temp"`
	CoolAtFinish bool           `json:"cool_at_finish"`
	Stages       []stageRequest `json:"stages" binding:"required"`
}

// ProgramRequest is an exported model for Swagger docs of the create payload.
type ProgramRequest struct {
	// Program name shown in listings
	Name string `json:"name" example:"country loaf"`
	// Initial heat-up temperature in Celsius; 0 skips the heat-up
	InitialTemp int `json:"initial_temp" example:"230"`
	// Turn the fan on after the last stage
	CoolAtFinish bool `json:"cool_at_finish" example:"true"`
	// Ordered stages; heat is HEATER, THERMO_CIRCULATION or GRILL
	Stages []stageRequest `json:"stages"`
}

// @Summary      Create baking program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        body  body   ProgramRequest  true  "Program payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/programs [post]
// @Security     BearerAuth
func (h *Handler) createProgram(c *gin.Context) {
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	params := service.ProgramParams{
		Name:         req.Name,
		InitialTemp:  req.InitialTemp,
		CoolAtFinish: req.CoolAtFinish,
	}
	for _, st := range req.Stages {
		params.Stages = append(params.Stages, service.StageParams{
			TargetTemp: st.TargetTemp,
			StageTime:  st.StageTime,
			Heat:       st.Heat,
		})
	}

	program, err := h.services.Programs.Create(c.Request.Context(), params)
	if err != nil {
		// Validation failures surface as bad request; storage errors are rare
		// enough to share the path (logged for diagnostics).
		if h.log != nil {
			h.log.Infow("program_create_failed", "err", err, "name", req.Name)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, program)
}

// @Summary      List baking programs
// @Tags         programs
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, programs"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/programs [get]
// @Security     BearerAuth
func (h *Handler) listPrograms(c *gin.Context) {
	programs, err := h.services.Programs.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list programs", "programs_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(programs),
		"programs": programs,
	})
}

// @Summary      Get baking program
// @Tags         programs
// @Produce      json
// @Param        id   path      string  true  "Program id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/programs/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProgram(c *gin.Context) {
	program, err := h.services.Programs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load program", "program_get_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, program)
}

// @Summary      Delete baking program
// @Tags         programs
// @Produce      json
// @Param        id   path      string  true  "Program id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/programs/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProgram(c *gin.Context) {
	if err := h.services.Programs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete program", "program_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
