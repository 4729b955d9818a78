package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

const refreshCollection = "refresh_tokens"

// MongoRefreshRepository is the authoritative store of live refresh tokens.
// Rows are matched by exact token value; expired rows are left in place (no
// sweeper in this service).
type MongoRefreshRepository struct {
	coll *mongo.Collection
}

func NewRefreshRepository(db *mongo.Database) *MongoRefreshRepository {
	return &MongoRefreshRepository{coll: db.Collection(refreshCollection)}
}

func (r *MongoRefreshRepository) Insert(ctx context.Context, record *domain.RefreshRecord) error {
	doc := bson.M{
		"username":   record.Username,
		"refresh":    record.Refresh,
		"expiration": record.Expiration,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// Delete removes the row with the given token value in one conditional
// operation. Two concurrent logouts for the same token race on the same
// filter, so exactly one of them observes a deletion.
func (r *MongoRefreshRepository) Delete(ctx context.Context, refresh string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"refresh": refresh})
	if err != nil {
		return false, fmt.Errorf("delete refresh token: %w", err)
	}
	return res.DeletedCount > 0, nil
}
