package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"freshtrack-be/internal/models"
	"freshtrack-be/internal/repository"
	"freshtrack-be/internal/utils"

	"github.com/sahilm/fuzzy"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// ErrUserNotFound is returned when an operation targets a user document
// that does not exist.
var ErrUserNotFound = errors.New("user not found")

// CatalogService exposes the read/list/delete surface over users and
// their scan collections.
type CatalogService struct {
	users    UserStore
	scans    ScanStore
	identity IdentityProvider
}

func NewCatalogService(users UserStore, scans ScanStore, identity IdentityProvider) *CatalogService {
	return &CatalogService{
		users:    users,
		scans:    scans,
		identity: identity,
	}
}

// UsersWithCounts lists every user together with the sizes of their scan
// collections. Count failures degrade to zero for that user.
func (s *CatalogService) UsersWithCounts(ctx context.Context) ([]models.UserWithCounts, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]models.UserWithCounts, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(subFetchLimit)
	for i, u := range users {
		i, u := i, u
		g.Go(func() error {
			shelf, err := s.scans.CountForUser(gctx, u.ID, repository.CollectionShelf)
			if err != nil {
				log.Printf("catalog: shelf count failed for user %s: %v", u.ID, err)
			}
			history, err := s.scans.CountForUser(gctx, u.ID, repository.CollectionHistory)
			if err != nil {
				log.Printf("catalog: history count failed for user %s: %v", u.ID, err)
			}
			out[i] = models.UserWithCounts{
				User:         u,
				ShelfCount:   int(shelf),
				HistoryCount: int(history),
				TotalScans:   int(shelf + history),
			}
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// AllScans returns every shelf scan across all users with the owner email
// attached, newest scannedDate first. Scans without a scannedDate sort as
// epoch zero, i.e. last.
func (s *CatalogService) AllScans(ctx context.Context) ([]models.Scan, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	perUser := make([][]models.Scan, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(subFetchLimit)
	for i, u := range users {
		i, u := i, u
		g.Go(func() error {
			scans, err := s.scans.ListForUser(gctx, u.ID, repository.CollectionShelf)
			if err != nil {
				log.Printf("catalog: shelf fetch failed for user %s: %v", u.ID, err)
				return nil
			}
			email := u.DisplayEmail()
			for j := range scans {
				scans[j].UserEmail = email
				scans[j].ApplyDefaults()
			}
			perUser[i] = scans
			return nil
		})
	}
	_ = g.Wait()

	var all []models.Scan
	for _, scans := range perUser {
		all = append(all, scans...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ScannedOrEpoch().After(all[j].ScannedOrEpoch())
	})

	return all, nil
}

// SearchScans fuzzy-matches shelf scans by produce name.
func (s *CatalogService) SearchScans(ctx context.Context, query string) ([]models.Scan, error) {
	all, err := s.AllScans(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(all))
	for i, scan := range all {
		names[i] = utils.NormalizeName(scan.Name)
	}

	matches := fuzzy.Find(utils.NormalizeName(query), names)

	out := make([]models.Scan, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out, nil
}

// UserShelf returns the raw shelf documents for one user.
func (s *CatalogService) UserShelf(ctx context.Context, userID string) ([]models.Scan, error) {
	return s.scans.ListForUser(ctx, userID, repository.CollectionShelf)
}

// UserHistory returns the raw history documents for one user.
func (s *CatalogService) UserHistory(ctx context.Context, userID string) ([]models.Scan, error) {
	return s.scans.ListForUser(ctx, userID, repository.CollectionHistory)
}

// DeleteUser removes a user entirely: shelf documents, then history
// documents, then the user document, then the identity-provider account.
// A missing user document aborts before anything is touched. An identity
// deletion failure is logged but does not fail the operation; the store
// side is already clean at that point.
func (s *CatalogService) DeleteUser(ctx context.Context, userID string) (shelfDeleted, historyDeleted int64, err error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, 0, ErrUserNotFound
		}
		return 0, 0, fmt.Errorf("failed to look up user: %w", err)
	}

	shelfDeleted, err = s.scans.DeleteForUser(ctx, userID, repository.CollectionShelf)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete shelf documents: %w", err)
	}

	historyDeleted, err = s.scans.DeleteForUser(ctx, userID, repository.CollectionHistory)
	if err != nil {
		return shelfDeleted, 0, fmt.Errorf("failed to delete history documents: %w", err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return shelfDeleted, historyDeleted, fmt.Errorf("failed to delete user document: %w", err)
	}

	if err := s.identity.DeleteUser(ctx, userID); err != nil {
		log.Printf("catalog: identity deletion failed for user %s: %v", userID, err)
	}

	return shelfDeleted, historyDeleted, nil
}
