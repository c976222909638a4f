package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bipan-sh/weight-tracker/models"
	"github.com/bipan-sh/weight-tracker/services"

	"github.com/gin-gonic/gin"
)

func RequestPartner(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		PartnerID uint `json:"partnerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner ID is required"})
		return
	}

	partnership, err := services.RequestPartnership(userID, input.PartnerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPartnershipExists),
			errors.Is(err, services.ErrPartnerNotFound),
			errors.Is(err, services.ErrSelfPartnership):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create partnership request"})
		}
		return
	}

	c.JSON(http.StatusOK, partnership)
}

// GetPartners returns the caller's accepted partners and the requests still
// waiting on their decision.
func GetPartners(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	partners, err := services.ListPartners(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch partners"})
		return
	}

	pending, err := services.ListPendingRequests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch pending requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"partners":        partners,
		"pendingRequests": pending,
	})
}

func AcceptPartner(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	partnershipID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partnership id"})
		return
	}

	partnership, err := services.AcceptPartnership(uint(partnershipID), userID)
	if err != nil {
		if errors.Is(err, services.ErrPartnershipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partnership request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept partnership"})
		return
	}

	c.JSON(http.StatusOK, partnership)
}

// UpdatePartner accepts or rejects a pending request depending on the
// status in the body.
func UpdatePartner(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	partnershipID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partnership id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Status {
	case models.PartnershipAccepted:
		partnership, err := services.AcceptPartnership(uint(partnershipID), userID)
		if err != nil {
			if errors.Is(err, services.ErrPartnershipNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Partnership request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update partnership"})
			return
		}
		c.JSON(http.StatusOK, partnership)
	case "REJECTED":
		if err := services.RejectPartnership(uint(partnershipID), userID); err != nil {
			if errors.Is(err, services.ErrPartnershipNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Partnership request not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update partnership"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Partnership request rejected"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	}
}

func RemovePartner(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	partnershipID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partnership id"})
		return
	}

	if err := services.RemovePartnership(uint(partnershipID), userID); err != nil {
		if errors.Is(err, services.ErrPartnershipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partnership not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove partnership"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partnership removed successfully"})
}

func GetPartnerWeights(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	partnerWeights, err := services.GetPartnerWeights(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch partner weights"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partnerWeights": partnerWeights})
}
