package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "taller-api/internal/handler/dto/request"
	resdto "taller-api/internal/handler/dto/response"
	"taller-api/internal/handler/httperr"
	"taller-api/internal/handler/middleware"
	"taller-api/internal/usecase/commands"
	"taller-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RepairHandler struct {
	repairCommands commands.RepairCommands
	repairQueries  queries.RepairQueries
}

func NewRepairHandler(repairCommands commands.RepairCommands, repairQueries queries.RepairQueries) *RepairHandler {
	return &RepairHandler{
		repairCommands: repairCommands,
		repairQueries:  repairQueries,
	}
}

// @Summary List repairs
// @Description List the full repair ledger
// @Tags repairs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RepairResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /repairs [get]
func (h *RepairHandler) ListRepairs(c *gin.Context) {
	views, err := h.repairQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromRepairViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get repair
// @Description Get one repair entry by ID
// @Tags repairs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Repair ID"
// @Success 200 {object} resdto.RepairResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /repairs/{id} [get]
func (h *RepairHandler) GetRepair(c *gin.Context) {
	id, ok := parseRepairID(c)
	if !ok {
		return
	}

	view, err := h.repairQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRepairNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Repair not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromRepairView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary My repairs
// @Description List repairs performed on the current user's registered plate
// @Tags repairs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RepairResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /repairs/mine [get]
func (h *RepairHandler) GetMyRepairs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("user id missing from context"), "User not authenticated", nil)
		return
	}

	views, err := h.repairQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoPlateOnFile):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No plate registered on profile", nil)
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromRepairViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create repair
// @Description Record a repair in the ledger
// @Tags repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRepairRequest true "Repair request"
// @Success 201 {object} resdto.RepairResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /repairs [post]
func (h *RepairHandler) CreateRepair(c *gin.Context) {
	var req reqdto.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.repairCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRepairValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid repair data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromRepairView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Update repair
// @Description Replace a repair ledger entry
// @Tags repairs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Repair ID"
// @Param request body reqdto.UpdateRepairRequest true "Repair request"
// @Success 200 {object} resdto.RepairResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /repairs/{id} [put]
func (h *RepairHandler) UpdateRepair(c *gin.Context) {
	id, ok := parseRepairID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.repairCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRepairNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Repair not found", nil)
		case errors.Is(err, commands.ErrRepairValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid repair data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromRepairView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete repair
// @Description Delete a repair ledger entry
// @Tags repairs
// @Security BearerAuth
// @Param id path int true "Repair ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /repairs/{id} [delete]
func (h *RepairHandler) DeleteRepair(c *gin.Context) {
	id, ok := parseRepairID(c)
	if !ok {
		return
	}

	if err := h.repairCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRepairNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Repair not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseRepairID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid repair ID format", nil)
		return 0, false
	}
	return id, true
}
