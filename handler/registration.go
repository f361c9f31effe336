package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid registration data")
		return
	}

	token, err := authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			utils.Conflict(c, "Email already exists")
			return
		}
		utils.InternalError(c, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{AccessToken: token})
}
