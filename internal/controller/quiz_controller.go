package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/quiz"
	"github.com/hqanh/theorytrainer/internal/service"
)

type QuizController struct {
	quizSvc service.QuizService
}

func NewQuizController(quizSvc service.QuizService) *QuizController {
	return &QuizController{quizSvc: quizSvc}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Create a session with zero points and streak
// @Tags quiz
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /quiz/sessions [post]
func (ctrl *QuizController) StartSession(c *gin.Context) {
	c.JSON(http.StatusCreated, ctrl.quizSvc.StartSession())
}

// GetSession godoc
// @Summary Get a session's score state
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /quiz/sessions/{id} [get]
func (ctrl *QuizController) GetSession(c *gin.Context) {
	resp, err := ctrl.quizSvc.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestion godoc
// @Summary Generate the next question
// @Description Draw a target and four distractors from the active categories and shuffle them
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Param categories query string false "Comma-separated categories (Writing,Research,Stats)"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Fewer than five eligible concepts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/sessions/{id}/question [get]
func (ctrl *QuizController) GetQuestion(c *gin.Context) {
	categories, err := parseCategories(c.Query("categories"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.quizSvc.GenerateQuestion(c.Param("id"), categories)
	if err != nil {
		var poolErr *quiz.InsufficientPoolError
		switch {
		case errors.As(err, &poolErr):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: poolErr.Error()})
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Msg("Failed to generate question")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate question"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Lock in an answer
// @Description Grade the choice, record the attempt, and update the session score
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body dto.SubmitAnswerRequest true "Question and chosen concept"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session or question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/sessions/{id}/answers [post]
func (ctrl *QuizController) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.quizSvc.SubmitAnswer(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrQuestionNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Msg("Failed to submit answer")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit answer"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
