package handlers

import (
	"net/http"

	"quiz-backend/internal/middleware"
	"quiz-backend/internal/models"
	"quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

type createQuizRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description"`
}

type updateQuizRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// callerID reads the authenticated user's id set by the auth middleware.
func callerID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(middleware.UserIDKey))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	quizzes, err := h.Service.List(c.Request.Context(), ownerID)
	if err != nil {
		fail(c, err)
		return
	}
	if quizzes == nil {
		quizzes = []models.QuizSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"items": quizzes})
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Service.Create(c.Request.Context(), ownerID, req.Title, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id, ok := pathID(c, "quizId")
	if !ok {
		return
	}
	quiz, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	id, ok := pathID(c, "quizId")
	if !ok {
		return
	}
	var req updateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := service.QuizPatch{Title: req.Title, Description: req.Description}
	if err := h.Service.Update(c.Request.Context(), id, patch); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id, ok := pathID(c, "quizId")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
