package domain

import (
	"errors"
	"time"
)

var ErrQuestionNotFound = errors.New("question not found")
var ErrForbidden = errors.New("access forbidden")

// Question is a board post. Author is the username of the member who wrote
// it; only the author may modify or delete the post.
type Question struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Subject    string    `json:"subject" bson:"subject"`
	Content    string    `json:"content" bson:"content"`
	Author     string    `json:"author" bson:"author"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	ModifiedAt time.Time `json:"modified_at,omitempty" bson:"modified_at,omitempty"`
	Answers    []Answer  `json:"answers,omitempty" bson:"-"`
}

// Answer is a reply attached to a question.
type Answer struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	QuestionID string    `json:"question_id" bson:"question_id"`
	Content    string    `json:"content" bson:"content"`
	Author     string    `json:"author" bson:"author"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// QuestionPage is one page of the board listing, newest first.
type QuestionPage struct {
	Questions  []Question `json:"questions"`
	Page       int        `json:"page"`
	TotalCount int64      `json:"total_count"`
}
