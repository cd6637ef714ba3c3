package ads

// CreateAdRequest is the administrator payload for publishing a new ad.
type CreateAdRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	URL         string  `json:"url" validate:"omitempty,url"`
	Reward      float64 `json:"reward" validate:"gte=0"`
}

// AdSummary is the display form the transport shows in the ad list.
type AdSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
