package services

import (
	"context"
	"errors"
	"fmt"

	"freshtrack-be/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeUserStore and fakeScanStore implement the store interfaces against
// in-memory data. The shared ops log records call order for the delete
// flow tests.

type fakeUserStore struct {
	users   []models.User
	listErr error
	ops     *[]string
}

func (f *fakeUserStore) record(op string) {
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.record("find:" + id)
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) Delete(ctx context.Context, id string) error {
	f.record("delete:user:" + id)
	return nil
}

type fakeScanStore struct {
	shelf   map[string][]models.Scan
	history map[string][]models.Scan
	failFor map[string]bool
	ops     *[]string
}

func (f *fakeScanStore) record(op string) {
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeScanStore) byName(name string) map[string][]models.Scan {
	if name == "history" {
		return f.history
	}
	return f.shelf
}

func (f *fakeScanStore) ListForUser(ctx context.Context, userID, name string) ([]models.Scan, error) {
	if f.failFor[userID] {
		return nil, errors.New("sub-collection unavailable")
	}
	return f.byName(name)[userID], nil
}

func (f *fakeScanStore) CountForUser(ctx context.Context, userID, name string) (int64, error) {
	if f.failFor[userID] {
		return 0, errors.New("sub-collection unavailable")
	}
	return int64(len(f.byName(name)[userID])), nil
}

func (f *fakeScanStore) DeleteForUser(ctx context.Context, userID, name string) (int64, error) {
	f.record(fmt.Sprintf("delete:%s:%s", name, userID))
	n := int64(len(f.byName(name)[userID]))
	delete(f.byName(name), userID)
	return n, nil
}

type fakeIdentity struct {
	err error
	ops *[]string
}

func (f *fakeIdentity) DeleteUser(ctx context.Context, uid string) error {
	if f.ops != nil {
		*f.ops = append(*f.ops, "identity:"+uid)
	}
	return f.err
}
