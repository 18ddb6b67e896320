package handlers

import (
	"net/http"

	"quiz-backend/internal/models"
	"quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

type createQuestionRequest struct {
	Text        string   `json:"text" binding:"required,min=3"`
	Options     []string `json:"options" binding:"required,min=2"`
	AnswerIndex *int     `json:"answerIndex" binding:"required,gte=0"`
}

type updateQuestionRequest struct {
	Text        *string  `json:"text"`
	Options     []string `json:"options" binding:"omitempty,min=2"`
	AnswerIndex *int     `json:"answerIndex" binding:"omitempty,gte=0"`
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	quizID, ok := pathID(c, "quizId")
	if !ok {
		return
	}
	questions, err := h.Service.ListByQuiz(c.Request.Context(), quizID)
	if err != nil {
		fail(c, err)
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, gin.H{"items": questions})
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	quizID, ok := pathID(c, "quizId")
	if !ok {
		return
	}
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Service.Create(c.Request.Context(), quizID, req.Text, req.Options, *req.AnswerIndex)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := service.QuestionPatch{
		Text:        req.Text,
		Options:     req.Options,
		AnswerIndex: req.AnswerIndex,
	}
	if err := h.Service.Update(c.Request.Context(), id, patch); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
