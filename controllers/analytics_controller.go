package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sopejohn/freshmart/services"
)

type AnalyticsController struct {
	Service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// Summary returns the dashboard analytics payload
func (ac *AnalyticsController) Summary(c *gin.Context) {
	summary, svcErr := ac.Service.Summary(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// MonthlyFinancials returns revenue aggregated by calendar month
func (ac *AnalyticsController) MonthlyFinancials(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	rows, svcErr := ac.Service.MonthlyFinancials(c.Request.Context(), months)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, rows)
}
