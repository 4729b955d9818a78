package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

const (
	newsCollection         = "news"
	regionalNewsCollection = "chungbuk_news"
)

// MongoNewsRepository archives aggregated articles. Writes are upserts keyed
// by URL, so re-fetching a keyword never duplicates an article.
type MongoNewsRepository struct {
	coll *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *MongoNewsRepository {
	return &MongoNewsRepository{coll: db.Collection(newsCollection)}
}

func (r *MongoNewsRepository) SaveAll(ctx context.Context, articles []domain.News) error {
	if len(articles) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(articles))
	for _, a := range articles {
		doc := bson.M{
			"keyword":      a.Keyword,
			"title":        a.Title,
			"url":          a.URL,
			"source":       a.Source,
			"published_at": a.PublishedAt,
			"fetched_at":   time.Now().UTC(),
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"url": a.URL}).
			SetUpdate(bson.M{"$set": doc}).
			SetUpsert(true))
	}

	opts := options.BulkWrite().SetOrdered(false)
	if _, err := r.coll.BulkWrite(ctx, models, opts); err != nil {
		return fmt.Errorf("save articles: %w", err)
	}
	return nil
}

// MongoRegionalNewsRepository reads the curated regional-news collection.
// An external crawler fills `chungbuk_news`; this service only lists it.
type MongoRegionalNewsRepository struct {
	coll *mongo.Collection
}

func NewRegionalNewsRepository(db *mongo.Database) *MongoRegionalNewsRepository {
	return &MongoRegionalNewsRepository{coll: db.Collection(regionalNewsCollection)}
}

func (r *MongoRegionalNewsRepository) FindAll(ctx context.Context) ([]domain.News, error) {
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list regional news: %w", err)
	}
	defer cur.Close(ctx)

	var articles []domain.News
	if err := cur.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode regional news: %w", err)
	}
	return articles, nil
}
