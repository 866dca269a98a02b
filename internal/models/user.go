package models

// User is one document from the users collection. The duplicated
// userId/user_id pair comes from the mobile client, which writes both.
type User struct {
	ID        string   `json:"userId" bson:"_id"`
	Email     string   `json:"email" bson:"email,omitempty"`
	UserID    string   `json:"user_id,omitempty" bson:"user_id,omitempty"`
	CreatedAt FlexTime `json:"created_at" bson:"created_at,omitempty"`
}

// DisplayEmail is the owner email attached to scans and activities.
func (u User) DisplayEmail() string {
	if u.Email == "" {
		return "Unknown"
	}
	return u.Email
}

// UserWithCounts is a user plus the sizes of its scan collections.
type UserWithCounts struct {
	User         `bson:",inline"`
	ShelfCount   int `json:"shelfCount"`
	HistoryCount int `json:"historyCount"`
	TotalScans   int `json:"totalScans"`
}
