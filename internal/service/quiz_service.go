package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/quiz"
	"github.com/hqanh/theorytrainer/internal/repository"
)

type QuizService interface {
	StartSession() *dto.SessionResponse
	GetSession(sessionID string) (*dto.SessionResponse, error)
	GenerateQuestion(sessionID string, categories []model.Category) (*dto.QuestionResponse, error)
	SubmitAnswer(sessionID string, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
}

// sessionState pairs the score value with the questions generated for
// the session and not yet answered.
type sessionState struct {
	session quiz.Session
	pending map[string]*quiz.Question
}

type quizService struct {
	conceptRepo repository.ConceptRepository
	attemptRepo repository.AttemptRepository

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]*sessionState
}

// NewQuizService builds the quiz engine. rng may be nil, in which case a
// time-seeded source is used; tests pass a seeded one.
func NewQuizService(conceptRepo repository.ConceptRepository, attemptRepo repository.AttemptRepository, rng *rand.Rand) QuizService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &quizService{
		conceptRepo: conceptRepo,
		attemptRepo: attemptRepo,
		rng:         rng,
		sessions:    make(map[string]*sessionState),
	}
}

func (s *quizService) StartSession() *dto.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[id] = &sessionState{pending: make(map[string]*quiz.Question)}
	log.Info().Str("session", id).Msg("Quiz session started")
	return &dto.SessionResponse{ID: id}
}

func (s *quizService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &dto.SessionResponse{ID: sessionID, Points: st.session.Points, Streak: st.session.Streak}, nil
}

func (s *quizService) GenerateQuestion(sessionID string, categories []model.Category) (*dto.QuestionResponse, error) {
	pool, err := s.conceptRepo.FindByCategories(categories)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load concept pool")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	question, err := quiz.NewQuestion(pool, s.rng)
	if err != nil {
		return nil, err
	}
	st.pending[question.ID] = question

	choices := make([]dto.ChoiceResponse, 0, len(question.Choices))
	for _, c := range question.Choices {
		choices = append(choices, dto.ChoiceResponse{ID: c.ID, Concept: c.Concept})
	}
	return &dto.QuestionResponse{
		QuestionID: question.ID,
		Definition: question.Target.Definition,
		Choices:    choices,
	}, nil
}

// SubmitAnswer grades the choice by identity against the question's
// target, appends a durable attempt row, then updates the session score.
// A failed attempt insert surfaces as an error and leaves the session
// score untouched.
func (s *quizService) SubmitAnswer(sessionID string, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	question, ok := st.pending[req.QuestionID]
	if !ok {
		return nil, ErrQuestionNotFound
	}
	delete(st.pending, req.QuestionID)

	correct := req.ChoiceID == question.Target.ID
	attempt := model.Attempt{
		ConceptID: question.Target.ID,
		Date:      time.Now(),
		Attempts:  1,
	}
	if correct {
		attempt.Correct = 1
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("conceptId", question.Target.ID).Msg("Failed to record attempt")
		return nil, err
	}

	st.session = st.session.RecordAnswer(correct)

	return &dto.AnswerResponse{
		Correct:         correct,
		CorrectChoiceID: question.Target.ID,
		CorrectConcept:  question.Target.Concept,
		Points:          st.session.Points,
		Streak:          st.session.Streak,
	}, nil
}
