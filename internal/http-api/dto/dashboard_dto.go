package dto

// DashboardResponse aggregates the user's shelf into the numbers the
// dashboard charts are drawn from.
type DashboardResponse struct {
	WantToRead       int                     `json:"want_to_read"`
	CurrentlyReading int                     `json:"currently_reading"`
	Read             int                     `json:"read"`
	PagesRead        int                     `json:"pages_read"`
	CurrentStreak    int                     `json:"current_streak"`
	LastReadingDate  string                  `json:"last_reading_date"`
	RecentlyUpdated  []LibraryRecordResponse `json:"recently_updated"`
}

// RecommendationsResponse carries suggested books for the user.
type RecommendationsResponse struct {
	Books []BookResponse `json:"books"`
}
