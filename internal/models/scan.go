package models

import "time"

// Scan is one produce-scan document from a user's shelf or history
// collection. Documents written by older app versions miss most fields, so
// everything except the ids is optional.
type Scan struct {
	ID            string   `json:"id" bson:"_id"`
	UserID        string   `json:"userId" bson:"userId,omitempty"`
	UserEmail     string   `json:"userEmail,omitempty" bson:"-"` // resolved from the owning user, never stored
	Name          string   `json:"name" bson:"name,omitempty"`
	Color         string   `json:"color" bson:"color,omitempty"`
	Freshness     string   `json:"freshness" bson:"freshness,omitempty"`
	HarvestedDate FlexTime `json:"harvestedDate" bson:"harvestedDate,omitempty"`
	ScannedDate   FlexTime `json:"scannedDate" bson:"scannedDate,omitempty"`
	ImageURL      string   `json:"imageUrl" bson:"imageUrl,omitempty"`
	EstimatedDays int      `json:"estimatedDays" bson:"estimatedDays,omitempty"`
	DayRange      string   `json:"dayRange" bson:"dayRange,omitempty"`
	ExpiryDate    FlexTime `json:"expiryDate" bson:"expiryDate,omitempty"`
	AddedAt       FlexTime `json:"addedAt" bson:"addedAt,omitempty"`
	ArchivedAt    FlexTime `json:"archivedAt" bson:"archivedAt,omitempty"`
	RemovalReason string   `json:"removalReason,omitempty" bson:"removalReason,omitempty"`
	RemovedDate   FlexTime `json:"removedDate" bson:"removedDate,omitempty"`
}

// ApplyDefaults fills absent display fields with placeholders so response
// shapes stay stable for chart/UI consumers.
func (s *Scan) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "Unknown"
	}
	if s.Color == "" {
		s.Color = "Unknown"
	}
	if s.Freshness == "" {
		s.Freshness = "Unknown"
	}
	if s.DayRange == "" {
		s.DayRange = "Unknown"
	}
}

// AnchorTime picks the timestamp that represents when the scan happened:
// scannedDate, then addedAt, then harvestedDate.
func (s Scan) AnchorTime() (time.Time, bool) {
	for _, ft := range []FlexTime{s.ScannedDate, s.AddedAt, s.HarvestedDate} {
		if t, ok := ft.Time(); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// ScannedOrEpoch is the sort key for scan listings: missing scan dates
// sort as epoch zero, i.e. last in a descending list.
func (s Scan) ScannedOrEpoch() time.Time {
	if t, ok := s.ScannedDate.Time(); ok {
		return t
	}
	return time.Unix(0, 0)
}
