package handler

import (
	"errors"
	"log"
	"net/http"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

func LoginHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	token, err := authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Invalid credentials")
			return
		}
		utils.InternalError(c, "Failed to log in")
		return
	}

	ua := useragent.Parse(c.Request.UserAgent())
	utils.TrackLoginClient(ua.Name, ua.OS)
	log.Printf("login: client %s %s on %s", ua.Name, ua.Version, ua.OS)

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}
