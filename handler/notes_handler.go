package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// PrivateTokenHeader carries the private-access grant issued by
// validate-private-password. It is independent of the bearer token.
const PrivateTokenHeader = "X-Private-Token"

func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString(middleware.ContextUserID)

	visibility, ok := model.ParseVisibility(c.Query("visibility"))
	if !ok {
		utils.BadRequest(c, "Invalid visibility")
		return
	}

	notes, err := notesService.ListNotes(c.Request.Context(), userID, visibility,
		c.GetHeader(PrivateTokenHeader))
	if err != nil {
		if errors.Is(err, usecase.ErrPrivateAccessDenied) {
			utils.Unauthorized(c, "Private access not granted")
			return
		}
		utils.InternalError(c, "Failed to list notes")
		return
	}

	c.JSON(http.StatusOK, notes)
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	note, err := notesService.GetNote(c.Request.Context(), noteID, userID,
		c.GetHeader(PrivateTokenHeader))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "Note not found")
		case errors.Is(err, usecase.ErrPrivateAccessDenied):
			utils.Unauthorized(c, "Private access not granted")
		default:
			utils.InternalError(c, "Failed to fetch note")
		}
		return
	}

	c.JSON(http.StatusOK, note)
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, note)
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), noteID, userID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, note)
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	if err := notesService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
