package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

const questionPageSize = 10

// BoardService implements the question/answer use cases. Ownership rules
// live here: only the author may modify or delete a post.
type BoardService struct {
	questions ports.QuestionRepository
	answers   ports.AnswerRepository
	logger    zerolog.Logger
}

func NewBoardService(questions ports.QuestionRepository, answers ports.AnswerRepository, logger zerolog.Logger) *BoardService {
	return &BoardService{questions: questions, answers: answers, logger: logger}
}

func (s *BoardService) ListQuestions(ctx context.Context, page int) (*domain.QuestionPage, error) {
	if page < 0 {
		page = 0
	}
	questions, total, err := s.questions.FindPage(ctx, page, questionPageSize)
	if err != nil {
		return nil, err
	}
	return &domain.QuestionPage{Questions: questions, Page: page, TotalCount: total}, nil
}

func (s *BoardService) GetQuestion(ctx context.Context, id string) (*domain.Question, error) {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	answers, err := s.answers.FindByQuestionID(ctx, id)
	if err != nil {
		return nil, err
	}
	question.Answers = answers
	return question, nil
}

func (s *BoardService) CreateQuestion(ctx context.Context, author, subject, content string) (*domain.Question, error) {
	question := &domain.Question{
		Subject:   strings.TrimSpace(subject),
		Content:   strings.TrimSpace(content),
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.questions.Insert(ctx, question)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("question_id", created.ID).Str("author", author).Msg("question created")
	return created, nil
}

func (s *BoardService) ModifyQuestion(ctx context.Context, author, id, subject, content string) error {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if question.Author != author {
		return domain.ErrForbidden
	}

	question.Subject = strings.TrimSpace(subject)
	question.Content = strings.TrimSpace(content)
	question.ModifiedAt = time.Now().UTC()
	return s.questions.Update(ctx, question)
}

func (s *BoardService) DeleteQuestion(ctx context.Context, author, id string) error {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if question.Author != author {
		return domain.ErrForbidden
	}
	return s.questions.Delete(ctx, id)
}

func (s *BoardService) CreateAnswer(ctx context.Context, author, questionID, content string) (*domain.Answer, error) {
	// The question must still exist; answering a deleted post is a 404.
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		return nil, err
	}

	answer := &domain.Answer{
		QuestionID: questionID,
		Content:    strings.TrimSpace(content),
		Author:     author,
		CreatedAt:  time.Now().UTC(),
	}
	return s.answers.Insert(ctx, answer)
}
