package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bipan-sh/weight-tracker/services"

	"github.com/gin-gonic/gin"
)

type GoalInput struct {
	StartWeight  float64 `json:"startWeight" binding:"required,gt=0"`
	TargetWeight float64 `json:"targetWeight" binding:"required,gt=0"`
	TargetDate   string  `json:"targetDate" binding:"required"`
}

func CreateGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetDate, err := time.Parse(time.RFC3339, input.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	goal, err := services.CreateGoal(userID, input.StartWeight, input.TargetWeight, targetDate)
	if err != nil {
		if errors.Is(err, services.ErrActiveGoalExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You already have an active goal"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

func ListGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goals, err := services.ListGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// GetGoal returns a single goal together with its progress, computed from
// the user's most recent weight entry. With no entries yet, progress starts
// at the goal's start weight.
func GetGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	goal, err := services.GetGoal(userID, uint(goalID))
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goal"})
		return
	}

	current := goal.StartWeight
	latest, err := services.LatestWeight(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goal"})
		return
	}
	if latest != nil {
		current = latest.Value
	}

	c.JSON(http.StatusOK, gin.H{
		"goal":     goal,
		"progress": services.GoalProgress(current, goal.StartWeight, goal.TargetWeight),
	})
}

func UpdateGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	var input struct {
		TargetWeight *float64 `json:"targetWeight"`
		TargetDate   *string  `json:"targetDate"`
		Achieved     *bool    `json:"achieved"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.TargetWeight != nil && *input.TargetWeight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetWeight must be positive"})
		return
	}

	upd := services.GoalUpdate{
		TargetWeight: input.TargetWeight,
		Achieved:     input.Achieved,
	}
	if input.TargetDate != nil {
		targetDate, err := time.Parse(time.RFC3339, *input.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		upd.TargetDate = &targetDate
	}

	goal, err := services.UpdateGoal(userID, uint(goalID), upd)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func DeleteGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	if err := services.DeleteGoal(userID, uint(goalID)); err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
