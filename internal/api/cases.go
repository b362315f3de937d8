package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ruimv/tribunal-backend/internal/cache"
	"github.com/ruimv/tribunal-backend/internal/query"
)

// SearchCases handles the public case search with filters and pagination
func (h *Handlers) SearchCases(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	params := query.CaseSearchParams{
		CaseNumber: c.Query("case_number"),
		PartyName:  c.Query("party_name"),
		CaseType:   c.Query("case_type"),
		Status:     c.Query("status"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		Page:       page,
		PerPage:    perPage,
	}

	cases, meta, err := query.SearchCases(h.db, params)
	if err != nil {
		if errors.Is(err, query.ErrBadDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		h.logger.Error("Case search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Case search failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"cases":      cases,
		"pagination": meta,
	})
}

// GetCase returns the details of a single public case
func (h *Handlers) GetCase(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid case ID",
		})
		return
	}

	// Only public results are cached, so a hit needs no re-check
	key := cache.CaseKey(uint(id))
	if view, found := h.cache.Get(key); found {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"case":    view,
		})
		return
	}

	view, err := query.GetCaseByID(h.db, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, query.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Case not found",
			})
		case errors.Is(err, query.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied to this case",
			})
		default:
			h.logger.Error("Failed to load case", "case_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to load case",
			})
		}
		return
	}

	h.cache.Set(key, view)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"case":    view,
	})
}

// GetCaseTypes returns the available case types
func (h *Handlers) GetCaseTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"case_types": []gin.H{
			{"value": "civil", "label": "Civil"},
			{"value": "criminal", "label": "Criminal"},
			{"value": "family", "label": "Family"},
			{"value": "probate", "label": "Probate"},
		},
	})
}

// GetCaseStatuses returns the available case statuses
func (h *Handlers) GetCaseStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"statuses": []gin.H{
			{"value": "open", "label": "Open"},
			{"value": "pending", "label": "Pending"},
			{"value": "closed", "label": "Closed"},
			{"value": "suspended", "label": "Suspended"},
		},
	})
}

// ListHearings returns the hearings of public cases
func (h *Handlers) ListHearings(c *gin.Context) {
	filters := query.HearingFilters{
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
		Courtroom: c.Query("courtroom"),
	}

	hearings, err := query.ListHearings(h.db, filters)
	if err != nil {
		if errors.Is(err, query.ErrBadDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		h.logger.Error("Hearing listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Hearing listing failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"hearings": hearings,
	})
}
