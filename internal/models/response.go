package models

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type UserListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Users   []UserWithCounts `json:"users"`
}

type ScanListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Scans   []Scan `json:"scans"`
}

type StatsResponse struct {
	Success bool            `json:"success"`
	Stats   *DashboardStats `json:"stats"`
	Error   string          `json:"error,omitempty"`
}

type DeleteUserResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	DeletedShelf   int64  `json:"deletedShelf"`
	DeletedHistory int64  `json:"deletedHistory"`
}
