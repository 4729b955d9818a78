package ports

import (
	"context"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RefreshRepository is the authoritative store of still-valid refresh
// tokens. Rows are matched by exact token value.
type RefreshRepository interface {
	Insert(ctx context.Context, record *domain.RefreshRecord) error
	// Delete removes the row holding the given token value and reports
	// whether a row was actually removed. The check-and-remove is a single
	// conditional operation, so concurrent logouts for the same token
	// resolve to exactly one successful deletion.
	Delete(ctx context.Context, refresh string) (bool, error)
}
