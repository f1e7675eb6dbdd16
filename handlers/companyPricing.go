package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movebook/models"
	"movebook/utils"
)

// GetPricingHandler returns the company's pricing table sorted by bedrooms.
func (h *CompanyHandler) GetPricingHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	rules, err := h.PricingRepo.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// ReplacePricingHandler replaces the pricing table wholesale. The save is
// all-or-nothing: one invalid rule rejects the entire set before anything is
// deleted.
func (h *CompanyHandler) ReplacePricingHandler(c *gin.Context) {
	companyID := c.GetString("companyID")

	var input struct {
		Rules []models.PricingRule `json:"rules"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	for _, rule := range input.Rules {
		switch {
		case rule.Bedrooms < 0:
			c.JSON(http.StatusBadRequest, gin.H{"error": "bedrooms cannot be negative"})
			return
		case rule.CrewSize < 1:
			c.JSON(http.StatusBadRequest, gin.H{"error": "crewSize must be at least 1"})
			return
		case rule.MinHours < 0:
			c.JSON(http.StatusBadRequest, gin.H{"error": "minHours cannot be negative"})
			return
		case rule.BasePrice < 0 || rule.HourlyRate < 0:
			c.JSON(http.StatusBadRequest, gin.H{"error": "prices cannot be negative"})
			return
		}
	}

	if err := h.PricingRepo.ReplaceAll(c.Request.Context(), companyID, input.Rules); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
