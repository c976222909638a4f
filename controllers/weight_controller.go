package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bipan-sh/weight-tracker/services"

	"github.com/gin-gonic/gin"
)

type WeightInput struct {
	Value float64 `json:"value" binding:"required,gt=0"`
	Date  string  `json:"date" binding:"required"`
}

func CreateWeight(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	weight, err := services.CreateWeight(userID, input.Value, date)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateDay) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weight already recorded for " + date.Format("02/01/2006")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create weight entry"})
		return
	}

	c.JSON(http.StatusCreated, weight)
}

func UpdateWeight(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	weightID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight id"})
		return
	}

	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	weight, err := services.UpdateWeight(userID, uint(weightID), input.Value, date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Weight entry not found"})
		case errors.Is(err, services.ErrDuplicateDay):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weight already recorded for " + date.Format("02/01/2006")})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update weight entry"})
		}
		return
	}

	c.JSON(http.StatusOK, weight)
}

func DeleteWeight(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	weightID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight id"})
		return
	}

	if err := services.DeleteWeight(userID, uint(weightID)); err != nil {
		if errors.Is(err, services.ErrWeightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weight entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete weight entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weight entry deleted successfully"})
}

func ListWeights(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	weights, err := services.ListWeights(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch weight entries"})
		return
	}

	c.JSON(http.StatusOK, weights)
}
