package services

import (
	"context"

	"freshtrack-be/internal/models"
)

// UserStore is the slice of the document store the services read users
// through. Implemented by repository.UserRepository.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// ScanStore reads and deletes per-user scan sub-collections ("shelf" or
// "history"). Implemented by repository.ScanRepository.
type ScanStore interface {
	ListForUser(ctx context.Context, userID, collection string) ([]models.Scan, error)
	CountForUser(ctx context.Context, userID, collection string) (int64, error)
	DeleteForUser(ctx context.Context, userID, collection string) (int64, error)
}

// IdentityProvider deletes the auth account backing a user document.
type IdentityProvider interface {
	DeleteUser(ctx context.Context, uid string) error
}
