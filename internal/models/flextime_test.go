package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type flexDoc struct {
	When FlexTime `bson:"when"`
}

func decodeWhen(t *testing.T, value interface{}) FlexTime {
	t.Helper()
	raw, err := bson.Marshal(bson.M{"when": value})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	var doc flexDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return doc.When
}

func TestFlexTime_DecodesHeterogeneousValues(t *testing.T) {
	ref := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	t.Run("bson datetime", func(t *testing.T) {
		ft := decodeWhen(t, ref)
		got, ok := ft.Time()
		if !ok || !got.Equal(ref) {
			t.Errorf("expected %v, got %v (set=%v)", ref, got, ok)
		}
	})

	t.Run("iso string", func(t *testing.T) {
		ft := decodeWhen(t, "2025-03-10T08:30:00Z")
		got, ok := ft.Time()
		if !ok || !got.Equal(ref) {
			t.Errorf("expected %v, got %v (set=%v)", ref, got, ok)
		}
	})

	t.Run("date only string", func(t *testing.T) {
		ft := decodeWhen(t, "2025-03-10")
		got, ok := ft.Time()
		if !ok || got.Year() != 2025 || got.Month() != time.March || got.Day() != 10 {
			t.Errorf("expected 2025-03-10, got %v (set=%v)", got, ok)
		}
	})

	t.Run("seconds document", func(t *testing.T) {
		ft := decodeWhen(t, bson.M{"seconds": ref.Unix()})
		got, ok := ft.Time()
		if !ok || !got.Equal(ref) {
			t.Errorf("expected %v, got %v (set=%v)", ref, got, ok)
		}
	})

	t.Run("firestore export document", func(t *testing.T) {
		ft := decodeWhen(t, bson.M{"_seconds": ref.Unix(), "_nanoseconds": int64(0)})
		got, ok := ft.Time()
		if !ok || !got.Equal(ref) {
			t.Errorf("expected %v, got %v (set=%v)", ref, got, ok)
		}
	})

	t.Run("epoch int64", func(t *testing.T) {
		ft := decodeWhen(t, ref.Unix())
		got, ok := ft.Time()
		if !ok || !got.Equal(ref) {
			t.Errorf("expected %v, got %v (set=%v)", ref, got, ok)
		}
	})
}

func TestFlexTime_BadValuesStayUnset(t *testing.T) {
	for name, value := range map[string]interface{}{
		"null":           nil,
		"garbage string": "not-a-date",
		"empty doc":      bson.M{},
		"bool":           true,
	} {
		t.Run(name, func(t *testing.T) {
			ft := decodeWhen(t, value)
			if ft.IsSet() {
				got, _ := ft.Time()
				t.Errorf("expected unset, got %v", got)
			}
		})
	}
}

func TestFlexTime_MissingFieldStaysUnset(t *testing.T) {
	raw, err := bson.Marshal(bson.M{})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	var doc flexDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	if doc.When.IsSet() {
		t.Error("expected missing field to stay unset")
	}
}

func TestFlexTime_JSON(t *testing.T) {
	ref := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	set, err := NewFlexTime(ref).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(set) != `"2025-03-10T08:30:00Z"` {
		t.Errorf("expected RFC3339 string, got %s", set)
	}

	unset, err := (FlexTime{}).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(unset) != "null" {
		t.Errorf("expected null, got %s", unset)
	}
}
