package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"motor-rental-api/internal/core/domain"
	"motor-rental-api/internal/core/ports"
	"motor-rental-api/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MotorbikeHandler struct {
	motorService *services.MotorbikeService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
	imageStorage ports.ImageStoragePort
}

func NewMotorbikeHandler(
	motorService *services.MotorbikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	imageStorage ports.ImageStoragePort,
) *MotorbikeHandler {
	return &MotorbikeHandler{
		motorService: motorService,
		logger:       logger,
		metrics:      metrics,
		imageStorage: imageStorage,
	}
}

type CreateMotorbikeRequest struct {
	Name              string  `form:"name" binding:"required" example:"Honda Wave"`
	Type              int     `form:"type" binding:"required" example:"1"`
	Color             string  `form:"color" example:"red"`
	Status            int     `form:"status" example:"1"`
	Description       string  `form:"description"`
	PriceDay          float64 `form:"price_day" example:"10"`
	PriceWeek         float64 `form:"price_week" example:"60"`
	PriceMonth        float64 `form:"price_month" example:"200"`
	LicensePlate      string  `form:"license_plate" binding:"required" example:"59A-123.45"`
	Capacity          int     `form:"capacity" example:"110"`
	MadeIn            string  `form:"made_in" example:"Vietnam"`
	Speed             int     `form:"speed" example:"80"`
	YearOfManufacture int     `form:"year_of_manufacture" example:"2021"`
	CompanyID         string  `form:"company_id" binding:"required"`
}

type UpdateMotorbikeRequest struct {
	Name         string  `form:"name" binding:"required"`
	Status       int     `form:"status" binding:"required"`
	Description  string  `form:"description"`
	PriceDay     float64 `form:"price_day"`
	PriceWeek    float64 `form:"price_week"`
	PriceMonth   float64 `form:"price_month"`
	LicensePlate string  `form:"license_plate" binding:"required"`
}

type MotorbikeResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Type              int       `json:"type"`
	Color             string    `json:"color"`
	Status            int       `json:"status"`
	Description       string    `json:"description"`
	PriceDay          float64   `json:"price_day"`
	PriceWeek         float64   `json:"price_week"`
	PriceMonth        float64   `json:"price_month"`
	LicensePlate      string    `json:"license_plate"`
	Avatar            string    `json:"avatar,omitempty"`
	Capacity          int       `json:"capacity"`
	MadeIn            string    `json:"made_in"`
	Speed             int       `json:"speed"`
	YearOfManufacture int       `json:"year_of_manufacture"`
	UserID            uuid.UUID `json:"user_id"`
	CompanyID         uuid.UUID `json:"company_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ListMotorbikesResponse struct {
	Motorbikes []domain.MotorbikeSummary `json:"motorbikes"`
	Count      int                       `json:"count"`
}

type DeleteMotorbikeResponse struct {
	Message string `json:"message"`
}

func newMotorbikeResponse(m *domain.Motorbike) MotorbikeResponse {
	return MotorbikeResponse{
		ID:                m.ID,
		Name:              m.Name,
		Type:              int(m.Type),
		Color:             m.Color,
		Status:            int(m.Status),
		Description:       m.Description,
		PriceDay:          m.PriceDay,
		PriceWeek:         m.PriceWeek,
		PriceMonth:        m.PriceMonth,
		LicensePlate:      m.LicensePlate,
		Avatar:            m.Avatar,
		Capacity:          m.Capacity,
		MadeIn:            m.MadeIn,
		Speed:             m.Speed,
		YearOfManufacture: m.YearOfManufacture,
		UserID:            m.UserID,
		CompanyID:         m.CompanyID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// @Summary Create a motorbike
// @Description Create a new rental motorbike with an optional avatar image
// @Tags motorbikes
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param request formData CreateMotorbikeRequest true "Motorbike data"
// @Param image formData file false "Avatar image"
// @Success 201 {object} MotorbikeResponse "Motorbike created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /motorbikes [post]
func (h *MotorbikeHandler) CreateMotorbike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateMotorbike", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateMotorbikeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error("Failed form parse in create motorbike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid company ID")
		return
	}

	status := domain.MotorbikeStatus(req.Status)
	if req.Status == 0 {
		status = domain.StatusAvailable
	}

	motorbike := &domain.Motorbike{
		Name:              req.Name,
		Type:              domain.MotorbikeType(req.Type),
		Color:             req.Color,
		Status:            status,
		Description:       req.Description,
		PriceDay:          req.PriceDay,
		PriceWeek:         req.PriceWeek,
		PriceMonth:        req.PriceMonth,
		LicensePlate:      req.LicensePlate,
		Capacity:          req.Capacity,
		MadeIn:            req.MadeIn,
		Speed:             req.Speed,
		YearOfManufacture: req.YearOfManufacture,
		UserID:            payload.UserID,
		CompanyID:         companyID,
	}

	created, err := h.motorService.AddMotorbike(c.Request.Context(), motorbike)
	if err != nil {
		h.logger.Error("Failed to create motorbike", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to create motorbike")
		return
	}

	// The avatar URL is only known once the record id exists, so the
	// image is stored after the insert and persisted with a full update.
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.imageStorage.SaveImage(file, created.ID.String())
		if err != nil {
			h.logger.Error("Failed to store motorbike image", map[string]interface{}{
				"error":        err.Error(),
				"motorbike_id": created.ID,
			})
			newErrorResponse(c, http.StatusInternalServerError, "Failed to store image")
			return
		}

		created.Avatar = url
		created, err = h.motorService.UpdateMotorbike(c.Request.Context(), created, true)
		if err != nil {
			h.logger.Error("Failed to attach motorbike image", map[string]interface{}{
				"error":        err.Error(),
				"motorbike_id": motorbike.ID,
			})
			newErrorResponse(c, statusFromError(err), "Failed to attach image")
			return
		}
	}

	h.logger.Info("Motorbike created successfully", map[string]interface{}{
		"motorbike_id": created.ID,
		"user_id":      created.UserID,
	})

	c.JSON(http.StatusCreated, newMotorbikeResponse(created))
}

// @Summary List motorbikes
// @Description List motorbikes with optional filters, sorting and pagination
// @Tags motorbikes
// @Security BearerAuth
// @Produce json
// @Param name query string false "Name substring filter"
// @Param license_plate query string false "License plate substring filter"
// @Param status query int false "Status filter (1=available 2=rented 3=maintenance)"
// @Param type query int false "Type filter (1=manual 2=semi-automatic 3=automatic 4=electric)"
// @Param user_id query string false "Filter by owning user"
// @Param mine query bool false "Only the caller's motorbikes"
// @Param skip query int false "Records to skip"
// @Param take query int false "Page size"
// @Param sort_by query string false "name_asc | name_desc | price_asc | price_desc"
// @Success 200 {object} ListMotorbikesResponse "Motorbike page"
// @Failure 400 {object} errorResponse "Invalid criteria"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /motorbikes [get]
func (h *MotorbikeHandler) ListMotorbikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to ListMotorbikes", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	criteria, err := parseFindCriteria(c)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	sortBy := domain.ParseSortBy(c.Query("sort_by"))

	var ownerID *uuid.UUID
	if c.Query("mine") == "true" {
		ownerID = &payload.UserID
	}

	motorbikes, err := h.motorService.GetAllMotorbikes(c.Request.Context(), criteria, sortBy, ownerID)
	if err != nil {
		h.logger.Error("Failed to list motorbikes", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, statusFromError(err), "Failed to list motorbikes")
		return
	}

	c.JSON(http.StatusOK, ListMotorbikesResponse{
		Motorbikes: motorbikes,
		Count:      len(motorbikes),
	})
}

// @Summary Get a motorbike
// @Description Get the detailed motorbike view by id
// @Tags motorbikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Motorbike ID"
// @Success 200 {object} domain.MotorbikeDetail "Motorbike found"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Motorbike not found"
// @Router /motorbikes/{id} [get]
func (h *MotorbikeHandler) GetMotorbike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	motorbikeID := c.Param("id")

	if _, exists := getAuthPayload(c, authPayloadKey); !exists {
		h.logger.Warn("Unauthorized access attempt to GetMotorbike", map[string]interface{}{
			"motorbike_id": motorbikeID,
			"ip":           c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	detail, err := h.motorService.GetMotorbikeByID(c.Request.Context(), motorbikeID)
	if err != nil {
		h.logger.Error("Failed to get motorbike", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": motorbikeID,
		})
		newErrorResponse(c, statusFromError(err), "Motorbike not found")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary Update a motorbike
// @Description Update a motorbike owned by the caller, with an optional new avatar image
// @Tags motorbikes
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param id path string true "Motorbike ID"
// @Param request formData UpdateMotorbikeRequest true "Fields to update"
// @Param image formData file false "Avatar image"
// @Success 200 {object} MotorbikeResponse "Motorbike updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Motorbike not found"
// @Router /motorbikes/{id} [put]
func (h *MotorbikeHandler) UpdateMotorbike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	motorbikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to UpdateMotorbike", map[string]interface{}{
			"motorbike_id": motorbikeID,
			"ip":           c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Ownership check: a motorbike owned by someone else is reported as
	// absent, never as forbidden.
	existing, err := h.motorService.GetMotorbikeForOwner(c.Request.Context(), motorbikeID, payload.UserID)
	if err != nil {
		h.logger.Warn("Motorbike not found for owner", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": motorbikeID,
			"user_id":      payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Motorbike not found")
		return
	}

	var req UpdateMotorbikeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error("Failed form parse in update motorbike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	motorbike := &domain.Motorbike{
		ID:           existing.ID,
		Name:         req.Name,
		Status:       domain.MotorbikeStatus(req.Status),
		Description:  req.Description,
		PriceDay:     req.PriceDay,
		PriceWeek:    req.PriceWeek,
		PriceMonth:   req.PriceMonth,
		LicensePlate: req.LicensePlate,
		Avatar:       existing.Avatar,
	}

	updated, err := h.motorService.UpdateMotorbike(c.Request.Context(), motorbike, false)
	if err != nil {
		h.logger.Error("Failed to update motorbike", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": motorbikeID,
		})
		newErrorResponse(c, statusFromError(err), "Update failed")
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := h.imageStorage.SaveImage(file, updated.ID.String())
		if err != nil {
			h.logger.Error("Failed to store motorbike image", map[string]interface{}{
				"error":        err.Error(),
				"motorbike_id": updated.ID,
			})
			newErrorResponse(c, http.StatusInternalServerError, "Failed to store image")
			return
		}

		updated.Avatar = url
		updated, err = h.motorService.UpdateMotorbike(c.Request.Context(), updated, true)
		if err != nil {
			h.logger.Error("Failed to attach motorbike image", map[string]interface{}{
				"error":        err.Error(),
				"motorbike_id": motorbikeID,
			})
			newErrorResponse(c, statusFromError(err), "Failed to attach image")
			return
		}
	}

	h.logger.Info("Motorbike updated successfully", map[string]interface{}{
		"motorbike_id": motorbikeID,
	})

	c.JSON(http.StatusOK, newMotorbikeResponse(updated))
}

// @Summary Delete a motorbike
// @Description Delete a motorbike owned by the caller
// @Tags motorbikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Motorbike ID"
// @Success 200 {object} DeleteMotorbikeResponse "Motorbike deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Motorbike not found"
// @Router /motorbikes/{id} [delete]
func (h *MotorbikeHandler) DeleteMotorbike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	motorbikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to DeleteMotorbike", map[string]interface{}{
			"motorbike_id": motorbikeID,
			"ip":           c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := h.motorService.DeleteMotorbike(c.Request.Context(), motorbikeID, payload.UserID); err != nil {
		h.logger.Error("Failed to delete motorbike", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": motorbikeID,
		})
		newErrorResponse(c, statusFromError(err), "Motorbike not found")
		return
	}

	h.logger.Info("Motorbike deleted successfully", map[string]interface{}{
		"motorbike_id": motorbikeID,
	})

	c.JSON(http.StatusOK, DeleteMotorbikeResponse{
		Message: "Motorbike deleted successfully",
	})
}

func parseFindCriteria(c *gin.Context) (domain.FindCriteria, error) {
	criteria := domain.FindCriteria{
		Name:         c.Query("name"),
		LicensePlate: c.Query("license_plate"),
	}

	if raw := c.Query("status"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, errors.New("invalid status filter")
		}
		status := domain.MotorbikeStatus(value)
		criteria.Status = &status
	}
	if raw := c.Query("type"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, errors.New("invalid type filter")
		}
		bikeType := domain.MotorbikeType(value)
		criteria.Type = &bikeType
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return criteria, errors.New("invalid user_id filter")
		}
		criteria.UserID = &userID
	}
	if raw := c.Query("skip"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, errors.New("invalid skip value")
		}
		criteria.Skip = value
	}
	if raw := c.Query("take"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, errors.New("invalid take value")
		}
		criteria.Take = value
	}

	return criteria, nil
}
