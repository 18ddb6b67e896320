package handlers

import (
	"net/http"

	"quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

type submitAttemptRequest struct {
	Answers []int  `json:"answers" binding:"required,min=1"`
	Email   string `json:"email" binding:"omitempty,email"`
}

func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	quizID, ok := pathID(c, "quizId")
	if !ok {
		return
	}
	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	score, err := h.Service.Submit(c.Request.Context(), quizID, req.Answers, req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, score)
}

func (h *AttemptHandler) GetAnalytics(c *gin.Context) {
	quizID, ok := pathID(c, "quizId")
	if !ok {
		return
	}
	summary, err := h.Service.Summarize(c.Request.Context(), quizID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
