package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func SetPrivatePasswordHandler(c *gin.Context, authService *usecase.AuthService) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.SetPrivatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Password must be at least 6 characters")
		return
	}

	err := authService.SetPrivatePassword(c.Request.Context(), userID, req.Password, req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			utils.BadRequest(c, "Passwords do not match")
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "User not found")
		default:
			utils.InternalError(c, "Failed to set private password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Private password set"})
}

// ValidatePrivatePasswordHandler always answers 200; validity lives in
// the body so clients can branch between "create" and "unlock" prompts.
func ValidatePrivatePasswordHandler(c *gin.Context, authService *usecase.AuthService) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.ValidatePrivatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	result, err := authService.ValidatePrivatePassword(c.Request.Context(), userID, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.InternalError(c, "Failed to validate private password")
		return
	}

	c.JSON(http.StatusOK, dto.ValidatePrivatePasswordResponse{
		Valid:        result.Valid,
		Message:      result.Message,
		PrivateToken: result.PrivateToken,
	})
}
