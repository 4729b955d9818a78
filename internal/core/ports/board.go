package ports

import (
	"context"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// QuestionRepository persists board posts.
type QuestionRepository interface {
	Insert(ctx context.Context, q *domain.Question) (*domain.Question, error)
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	FindPage(ctx context.Context, page, size int) ([]domain.Question, int64, error)
	Update(ctx context.Context, q *domain.Question) error
	Delete(ctx context.Context, id string) error
}

// AnswerRepository persists replies.
type AnswerRepository interface {
	Insert(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
	FindByQuestionID(ctx context.Context, questionID string) ([]domain.Answer, error)
}

// BoardService implements the question/answer use cases.
type BoardService interface {
	ListQuestions(ctx context.Context, page int) (*domain.QuestionPage, error)
	GetQuestion(ctx context.Context, id string) (*domain.Question, error)
	CreateQuestion(ctx context.Context, author, subject, content string) (*domain.Question, error)
	ModifyQuestion(ctx context.Context, author, id, subject, content string) error
	DeleteQuestion(ctx context.Context, author, id string) error
	CreateAnswer(ctx context.Context, author, questionID, content string) (*domain.Answer, error)
}
