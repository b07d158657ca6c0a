package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalapp/vitalapp-api/internal/models"
	"github.com/vitalapp/vitalapp-api/internal/repository"
)

func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.Admins.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list admins"})
		return
	}
	for i := range admins {
		admins[i].Password = ""
	}
	c.JSON(http.StatusOK, admins)
}

func (h *Handler) GetAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	admin, err := h.Admins.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get admin"})
		return
	}
	admin.Password = ""
	c.JSON(http.StatusOK, admin)
}

func (h *Handler) SaveAdmin(c *gin.Context) {
	var admin models.Admin
	if err := c.ShouldBindJSON(&admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.Admins.SaveOrUpdate(c.Request.Context(), &admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save admin"})
		return
	}
	admin.Password = ""
	c.JSON(http.StatusCreated, admin)
}

func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var admin models.Admin
	if err := c.ShouldBindJSON(&admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	updated, err := h.Admins.UpdateByID(c.Request.Context(), id, &admin)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin"})
		return
	}
	updated.Password = ""
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Admins.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin"})
		return
	}
	c.Status(http.StatusNoContent)
}
