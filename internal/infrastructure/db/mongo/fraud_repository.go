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
	fraudCaseCollection = "fraud_cases"
	fraudStatCollection = "fraud_stats"
)

// MongoFraudRepository reads the imported fraud dataset. The collections are
// populated by an external import job, never written by this service.
type MongoFraudRepository struct {
	cases *mongo.Collection
	stats *mongo.Collection
}

func NewFraudRepository(db *mongo.Database) *MongoFraudRepository {
	return &MongoFraudRepository{
		cases: db.Collection(fraudCaseCollection),
		stats: db.Collection(fraudStatCollection),
	}
}

type mongoFraudCase struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	City         string             `bson:"city"`
	District     string             `bson:"district"`
	Neighborhood string             `bson:"neighborhood"`
	Description  string             `bson:"description,omitempty"`
	CaseDate     time.Time          `bson:"case_date"`
}

func (r *MongoFraudRepository) FindByRegion(ctx context.Context, city, district, neighborhood string) ([]domain.FraudCase, error) {
	filter := bson.M{"city": city, "district": district, "neighborhood": neighborhood}
	opts := options.Find().SetSort(bson.D{{Key: "case_date", Value: -1}})

	cur, err := r.cases.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find fraud cases: %w", err)
	}
	defer cur.Close(ctx)

	var cases []domain.FraudCase
	for cur.Next(ctx) {
		var doc mongoFraudCase
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode fraud case: %w", err)
		}
		cases = append(cases, domain.FraudCase{
			ID:           doc.ID.Hex(),
			City:         doc.City,
			District:     doc.District,
			Neighborhood: doc.Neighborhood,
			Description:  doc.Description,
			CaseDate:     doc.CaseDate,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate fraud cases: %w", err)
	}
	return cases, nil
}

func (r *MongoFraudRepository) FindStatsByYear(ctx context.Context, year int) ([]domain.FraudStat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "district", Value: 1}})
	cur, err := r.stats.Find(ctx, bson.M{"year": year}, opts)
	if err != nil {
		return nil, fmt.Errorf("find fraud stats: %w", err)
	}
	defer cur.Close(ctx)

	var stats []domain.FraudStat
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode fraud stats: %w", err)
	}
	return stats, nil
}
