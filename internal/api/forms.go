package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ruimv/tribunal-backend/internal/query"
)

// ListForms returns the active forms grouped by category
func (h *Handlers) ListForms(c *gin.Context) {
	forms, total, err := query.ListForms(h.db, c.Query("category"), c.Query("search"))
	if err != nil {
		h.logger.Error("Form listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Form listing failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"forms":   forms,
		"total":   total,
	})
}

// GetFormCategories returns the available form categories
func (h *Handlers) GetFormCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"categories": []gin.H{
			{"value": "civil", "label": "Civil Forms", "description": "Forms for civil proceedings"},
			{"value": "criminal", "label": "Criminal Forms", "description": "Forms for criminal proceedings"},
			{"value": "family", "label": "Family Forms", "description": "Forms for family proceedings"},
			{"value": "probate", "label": "Probate Forms", "description": "Forms for probate proceedings"},
		},
	})
}

// GetForm returns the details of a single active form
func (h *Handlers) GetForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid form ID",
		})
		return
	}

	form, err := query.GetFormByID(h.db, uint(id))
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Form not available",
			})
			return
		}
		h.logger.Error("Failed to load form", "form_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to load form",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"form":    form,
	})
}

// DownloadForm serves a form's file as an attachment
func (h *Handlers) DownloadForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid form ID",
		})
		return
	}

	form, err := query.GetFormByID(h.db, uint(id))
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Form not available",
			})
			return
		}
		h.logger.Error("Failed to load form", "form_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to load form",
		})
		return
	}

	path, err := query.ResolveFormFile(h.cfg.FormsDir, form.FilePath)
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Form file not found",
			})
			return
		}
		h.logger.Error("Failed to resolve form file", "form_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to resolve form file",
		})
		return
	}

	c.FileAttachment(path, form.Title+".pdf")
}
