package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

const (
	questionCollection = "questions"
	answerCollection   = "answers"
)

type MongoQuestionRepository struct {
	coll *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *MongoQuestionRepository {
	return &MongoQuestionRepository{coll: db.Collection(questionCollection)}
}

type mongoQuestion struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Subject    string             `bson:"subject"`
	Content    string             `bson:"content"`
	Author     string             `bson:"author"`
	CreatedAt  time.Time          `bson:"created_at"`
	ModifiedAt time.Time          `bson:"modified_at,omitempty"`
}

func (r *MongoQuestionRepository) Insert(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	doc := mongoQuestion{
		Subject:   q.Subject,
		Content:   q.Content,
		Author:    q.Author,
		CreatedAt: q.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}

	out := *q
	out.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &out, nil
}

func (r *MongoQuestionRepository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	var mq mongoQuestion
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mq); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	return toQuestion(mq), nil
}

func (r *MongoQuestionRepository) FindPage(ctx context.Context, page, size int) ([]domain.Question, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	defer cur.Close(ctx)

	questions := make([]domain.Question, 0, size)
	for cur.Next(ctx) {
		var mq mongoQuestion
		if err := cur.Decode(&mq); err != nil {
			return nil, 0, fmt.Errorf("decode question: %w", err)
		}
		questions = append(questions, *toQuestion(mq))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, total, nil
}

func (r *MongoQuestionRepository) Update(ctx context.Context, q *domain.Question) error {
	oid, err := primitive.ObjectIDFromHex(q.ID)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	update := bson.M{"$set": bson.M{
		"subject":     q.Subject,
		"content":     q.Content,
		"modified_at": q.ModifiedAt,
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *MongoQuestionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func toQuestion(mq mongoQuestion) *domain.Question {
	return &domain.Question{
		ID:         mq.ID.Hex(),
		Subject:    mq.Subject,
		Content:    mq.Content,
		Author:     mq.Author,
		CreatedAt:  mq.CreatedAt,
		ModifiedAt: mq.ModifiedAt,
	}
}

type MongoAnswerRepository struct {
	coll *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *MongoAnswerRepository {
	return &MongoAnswerRepository{coll: db.Collection(answerCollection)}
}

type mongoAnswer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	QuestionID string             `bson:"question_id"`
	Content    string             `bson:"content"`
	Author     string             `bson:"author"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (r *MongoAnswerRepository) Insert(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	doc := mongoAnswer{
		QuestionID: a.QuestionID,
		Content:    a.Content,
		Author:     a.Author,
		CreatedAt:  a.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert answer: %w", err)
	}

	out := *a
	out.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &out, nil
}

func (r *MongoAnswerRepository) FindByQuestionID(ctx context.Context, questionID string) ([]domain.Answer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"question_id": questionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer cur.Close(ctx)

	var answers []domain.Answer
	for cur.Next(ctx) {
		var ma mongoAnswer
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode answer: %w", err)
		}
		answers = append(answers, domain.Answer{
			ID:         ma.ID.Hex(),
			QuestionID: ma.QuestionID,
			Content:    ma.Content,
			Author:     ma.Author,
			CreatedAt:  ma.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return answers, nil
}
