package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"freshtrack-be/internal/models"
)

func TestDeleteUser_OrderAndCounts(t *testing.T) {
	var ops []string
	users := &fakeUserStore{users: []models.User{{ID: "u1", Email: "a@example.com"}}, ops: &ops}
	scans := &fakeScanStore{
		shelf:   map[string][]models.Scan{"u1": {{ID: "s1"}, {ID: "s2"}}},
		history: map[string][]models.Scan{"u1": {{ID: "h1"}}},
		ops:     &ops,
	}
	identity := &fakeIdentity{ops: &ops}

	s := NewCatalogService(users, scans, identity)
	shelfDeleted, historyDeleted, err := s.DeleteUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if shelfDeleted != 2 || historyDeleted != 1 {
		t.Errorf("expected 2 shelf + 1 history deleted, got %d + %d", shelfDeleted, historyDeleted)
	}

	// Scan documents go first, then the user document, then the identity
	// account.
	expected := []string{"find:u1", "delete:shelf:u1", "delete:history:u1", "delete:user:u1", "identity:u1"}
	if !reflect.DeepEqual(ops, expected) {
		t.Errorf("expected op order %v, got %v", expected, ops)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	var ops []string
	users := &fakeUserStore{ops: &ops}
	scans := &fakeScanStore{ops: &ops}

	s := NewCatalogService(users, scans, &fakeIdentity{ops: &ops})
	_, _, err := s.DeleteUser(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Nothing beyond the lookup may touch the store.
	if expected := []string{"find:ghost"}; !reflect.DeepEqual(ops, expected) {
		t.Errorf("expected only the lookup, got %v", ops)
	}
}

func TestDeleteUser_IdentityFailureIsNotFatal(t *testing.T) {
	users := &fakeUserStore{users: []models.User{{ID: "u1"}}}
	scans := &fakeScanStore{shelf: map[string][]models.Scan{}, history: map[string][]models.Scan{}}
	identity := &fakeIdentity{err: errors.New("identity provider down")}

	s := NewCatalogService(users, scans, identity)
	if _, _, err := s.DeleteUser(context.Background(), "u1"); err != nil {
		t.Fatalf("expected identity failure to be swallowed, got %v", err)
	}
}

func TestAllScans_SortedAndEnriched(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	users := &fakeUserStore{users: []models.User{
		{ID: "u1", Email: "a@example.com"},
		{ID: "u2"}, // no email on the document
	}}
	scans := &fakeScanStore{
		shelf: map[string][]models.Scan{
			"u1": {
				{ID: "old", ScannedDate: models.NewFlexTime(now.Add(-48 * time.Hour))},
				{ID: "new", Name: "Banana", ScannedDate: models.NewFlexTime(now.Add(-time.Hour))},
			},
			"u2": {
				{ID: "undated"}, // missing scannedDate sorts as epoch zero
			},
		},
	}

	s := NewCatalogService(users, scans, &fakeIdentity{})
	all, err := s.AllScans(context.Background())
	if err != nil {
		t.Fatalf("AllScans failed: %v", err)
	}

	if len(all) != 3 {
		t.Fatalf("expected 3 scans, got %d", len(all))
	}

	gotOrder := []string{all[0].ID, all[1].ID, all[2].ID}
	if expected := []string{"new", "old", "undated"}; !reflect.DeepEqual(gotOrder, expected) {
		t.Errorf("expected order %v, got %v", expected, gotOrder)
	}

	if all[0].UserEmail != "a@example.com" {
		t.Errorf("expected owner email attached, got %q", all[0].UserEmail)
	}
	if all[2].UserEmail != "Unknown" {
		t.Errorf("expected Unknown email for mail-less user, got %q", all[2].UserEmail)
	}
	if all[1].Name != "Unknown" {
		t.Errorf("expected placeholder name, got %q", all[1].Name)
	}
}

func TestUsersWithCounts(t *testing.T) {
	users := &fakeUserStore{users: []models.User{
		{ID: "u1", Email: "a@example.com"},
		{ID: "u2", Email: "b@example.com"},
	}}
	scans := &fakeScanStore{
		shelf:   map[string][]models.Scan{"u1": {{ID: "s1"}, {ID: "s2"}}},
		history: map[string][]models.Scan{"u1": {{ID: "h1"}}},
	}

	s := NewCatalogService(users, scans, &fakeIdentity{})
	got, err := s.UsersWithCounts(context.Background())
	if err != nil {
		t.Fatalf("UsersWithCounts failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
	if got[0].ShelfCount != 2 || got[0].HistoryCount != 1 || got[0].TotalScans != 3 {
		t.Errorf("unexpected counts for u1: %+v", got[0])
	}
	if got[1].TotalScans != 0 {
		t.Errorf("expected zero scans for u2, got %+v", got[1])
	}
}

func TestSearchScans(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	users := &fakeUserStore{users: []models.User{{ID: "u1", Email: "a@example.com"}}}
	scans := &fakeScanStore{
		shelf: map[string][]models.Scan{
			"u1": {
				{ID: "s1", Name: "Banana", ScannedDate: models.NewFlexTime(now)},
				{ID: "s2", Name: "Pêche", ScannedDate: models.NewFlexTime(now)},
				{ID: "s3", Name: "Tomato", ScannedDate: models.NewFlexTime(now)},
			},
		},
	}

	s := NewCatalogService(users, scans, &fakeIdentity{})

	t.Run("plain match", func(t *testing.T) {
		got, err := s.SearchScans(context.Background(), "banan")
		if err != nil {
			t.Fatalf("SearchScans failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "s1" {
			t.Errorf("expected s1, got %v", got)
		}
	})

	t.Run("diacritics folded", func(t *testing.T) {
		got, err := s.SearchScans(context.Background(), "peche")
		if err != nil {
			t.Fatalf("SearchScans failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "s2" {
			t.Errorf("expected s2, got %v", got)
		}
	})
}
