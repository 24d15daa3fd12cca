package handler

import (
	"errors"
	"fmt"
	"net/http"

	"fitness-backend/internal/models"
	"fitness-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ScheduleHandler serves the admin schedule CRUD and the reference lookups
// backing the schedule editor. All routes sit behind the Admin role gate.
type ScheduleHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Trainers(c *gin.Context)
	Rooms(c *gin.Context)
	Activities(c *gin.Context)
}

type scheduleHandler struct {
	repo repository.ScheduleRepository
	log  *logrus.Logger
}

func NewScheduleHandler(repo repository.ScheduleRepository, log *logrus.Logger) ScheduleHandler {
	return &scheduleHandler{repo: repo, log: log}
}

type CreateScheduleRequest struct {
	TrainerID       int64   `json:"trainerId" binding:"required"`
	RoomID          int64   `json:"roomId" binding:"required"`
	ActivityID      int64   `json:"activityId" binding:"required"`
	ScheduleDate    string  `json:"scheduleDate" binding:"required"`
	StartTime       string  `json:"startTime" binding:"required"`
	EndTime         string  `json:"endTime" binding:"required"`
	MaxParticipants int     `json:"maxParticipants" binding:"required"`
	Notes           *string `json:"notes"`
}

type UpdateScheduleRequest struct {
	ID              int64   `json:"id" binding:"required"`
	TrainerID       int64   `json:"trainerId" binding:"required"`
	RoomID          int64   `json:"roomId" binding:"required"`
	ActivityID      int64   `json:"activityId" binding:"required"`
	ScheduleDate    string  `json:"scheduleDate" binding:"required"`
	StartTime       string  `json:"startTime" binding:"required"`
	EndTime         string  `json:"endTime" binding:"required"`
	MaxParticipants int     `json:"maxParticipants" binding:"required"`
	Status          string  `json:"status" binding:"required"`
	Notes           *string `json:"notes"`
}

type DeleteScheduleRequest struct {
	ScheduleID int64 `json:"scheduleId" binding:"required"`
}

func (h *scheduleHandler) List(c *gin.Context) {
	items, err := h.repo.ListAdmin()
	if err != nil {
		h.log.Errorf("Failed to list schedule: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching schedule."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Schedule fetched successfully.",
		"data":    items,
	})
}

func (h *scheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for schedule create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All required schedule fields must be filled in."})
		return
	}

	scheduleID, err := h.repo.Create(&models.NewScheduleItem{
		TrainerID:       req.TrainerID,
		RoomID:          req.RoomID,
		ActivityID:      req.ActivityID,
		ScheduleDate:    req.ScheduleDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxParticipants: req.MaxParticipants,
		Notes:           req.Notes,
	})
	if err != nil {
		var constraintErr *repository.ConstraintError
		if errors.As(err, &constraintErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constraintErr.Message})
			return
		}
		h.log.Errorf("Failed to create schedule item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while creating schedule item."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Schedule item created successfully.",
		"id":      scheduleID,
	})
}

func (h *scheduleHandler) Update(c *gin.Context) {
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for schedule update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All required schedule fields must be filled in."})
		return
	}

	err := h.repo.Update(&models.ScheduleItemUpdate{
		ID:              req.ID,
		TrainerID:       req.TrainerID,
		RoomID:          req.RoomID,
		ActivityID:      req.ActivityID,
		ScheduleDate:    req.ScheduleDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxParticipants: req.MaxParticipants,
		Status:          req.Status,
		Notes:           req.Notes,
	})
	if err != nil {
		var constraintErr *repository.ConstraintError
		if errors.As(err, &constraintErr) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": constraintErr.Message})
			return
		}
		h.log.Errorf("Failed to update schedule item %d: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while updating schedule item."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Schedule item %d updated successfully.", req.ID),
	})
}

func (h *scheduleHandler) Delete(c *gin.Context) {
	var req DeleteScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for schedule delete: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Schedule item id is required."})
		return
	}

	if err := h.repo.Delete(req.ScheduleID); err != nil {
		var constraintErr *repository.ConstraintError
		if errors.As(err, &constraintErr) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": constraintErr.Message})
			return
		}
		h.log.Errorf("Failed to delete schedule item %d: %v", req.ScheduleID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while deleting schedule item."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Schedule item %d deleted successfully.", req.ScheduleID),
	})
}

func (h *scheduleHandler) Trainers(c *gin.Context) {
	refs, err := h.repo.Trainers()
	if err != nil {
		h.log.Errorf("Failed to fetch trainers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching trainers."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": refs})
}

func (h *scheduleHandler) Rooms(c *gin.Context) {
	refs, err := h.repo.Rooms()
	if err != nil {
		h.log.Errorf("Failed to fetch rooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching rooms."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": refs})
}

func (h *scheduleHandler) Activities(c *gin.Context) {
	refs, err := h.repo.Activities()
	if err != nil {
		h.log.Errorf("Failed to fetch activities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching activities."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": refs})
}
