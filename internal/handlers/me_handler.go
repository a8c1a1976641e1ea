package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	switch role {
	case middleware.RoleAdmin:
		var admin models.Admin
		if err := h.db.First(&admin, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       admin.ID,
			"nome":     admin.Nome,
			"login":    admin.Login,
			"foto_url": admin.FotoURL,
			"tipo":     role,
		})

	case middleware.RoleBarbeiro:
		var barber models.Barber
		if err := h.db.First(&barber, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":         barber.ID,
			"nome":       barber.Nome,
			"login":      barber.Login,
			"foto_url":   barber.FotoURL,
			"disponivel": barber.Disponivel,
			"tipo":       role,
		})

	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown_role"})
	}
}
