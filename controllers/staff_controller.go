package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sopejohn/freshmart/models"
	"github.com/Sopejohn/freshmart/repository"
)

type StaffController struct {
	Repo   repository.StaffRepository
	Logger *zap.Logger
}

func NewStaffController(repo repository.StaffRepository, logger *zap.Logger) *StaffController {
	return &StaffController{Repo: repo, Logger: logger}
}

type staffMemberRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role" binding:"required"`
	Status   string  `json:"status" binding:"omitempty,oneof=active inactive"`
	HireDate string  `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	Salary   float64 `json:"salary" binding:"omitempty,gte=0"`
}

func (sc *StaffController) ListMembers(c *gin.Context) {
	members, err := sc.Repo.FindAll(c.Request.Context(), c.Query("role"), c.Query("search"))
	if err != nil {
		sc.Logger.Error("Failed to list staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}
	c.JSON(http.StatusOK, members)
}

func (sc *StaffController) CreateMember(c *gin.Context) {
	var req staffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StaffStatusActive
	}

	member := models.StaffMember{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Status:   status,
		HireDate: req.HireDate,
		Salary:   req.Salary,
	}

	if err := sc.Repo.Create(c.Request.Context(), &member); err != nil {
		sc.Logger.Error("Failed to create staff member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (sc *StaffController) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	var req staffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := sc.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		sc.Logger.Error("Failed to load staff member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff member"})
		return
	}

	member.Name = req.Name
	member.Email = req.Email
	member.Phone = req.Phone
	member.Role = req.Role
	if req.Status != "" {
		member.Status = req.Status
	}
	if req.HireDate != "" {
		member.HireDate = req.HireDate
	}
	member.Salary = req.Salary

	if err := sc.Repo.Update(c.Request.Context(), member); err != nil {
		sc.Logger.Error("Failed to update staff member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (sc *StaffController) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	if err := sc.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		sc.Logger.Error("Failed to delete staff member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		return
	}
	c.Status(http.StatusNoContent)
}
