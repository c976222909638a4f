package controllers

import (
	"errors"
	"net/http"

	"github.com/bipan-sh/weight-tracker/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	user, err := services.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"isFirstLogin": user.IsFirstLogin,
	})
}

func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		IsFirstLogin *bool `json:"isFirstLogin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.SetFirstLogin(userID, *input.IsFirstLogin)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"isFirstLogin": user.IsFirstLogin,
	})
}

// ListAvailableUsers returns users the caller can still send a partner
// request to.
func ListAvailableUsers(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	users, err := services.AvailableUsers(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func SearchUsers(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	users, err := services.SearchUsers(userID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func GetPrivacySettings(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	settings, err := services.GetPrivacySettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch privacy settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func UpdatePrivacySettings(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		ShareWeight   *bool `json:"shareWeight"`
		ShareGoals    *bool `json:"shareGoals"`
		ShareProgress *bool `json:"shareProgress"`
		PublicProfile *bool `json:"publicProfile"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := services.UpdatePrivacySettings(userID, services.PrivacyUpdate{
		ShareWeight:   input.ShareWeight,
		ShareGoals:    input.ShareGoals,
		ShareProgress: input.ShareProgress,
		PublicProfile: input.PublicProfile,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update privacy settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
