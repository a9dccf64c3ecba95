package domain

import "time"

type AdSet struct {
	ID             int        `json:"id"`
	CampaignID     int        `json:"campaignId"`
	MetaAdSetID    *string    `json:"metaAdSetId,omitempty"`
	Name           string     `json:"name"`
	DailyBudget    *int       `json:"dailyBudget,omitempty"`
	LifetimeBudget *int       `json:"lifetimeBudget,omitempty"`
	Targeting      *string    `json:"targeting,omitempty"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	Status         Status     `json:"status"`
	SyncStatus     SyncStatus `json:"syncStatus"`
	SyncError      *string    `json:"syncError,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Creative struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	MetaCreativeID *string   `json:"metaCreativeId,omitempty"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	CallToAction   string    `json:"callToAction"`
	LinkURL        string    `json:"linkUrl"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	VideoURL       *string   `json:"videoUrl,omitempty"`
	GeneratedByAI  bool      `json:"generatedByAi"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Ad struct {
	ID         int        `json:"id"`
	AdSetID    int        `json:"adSetId"`
	CreativeID int        `json:"creativeId"`
	MetaAdID   *string    `json:"metaAdId,omitempty"`
	Name       string     `json:"name"`
	Status     Status     `json:"status"`
	SyncStatus SyncStatus `json:"syncStatus"`
	SyncError  *string    `json:"syncError,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// AdWithDetails é o anúncio com a cadeia conjunto → campanha e o criativo.
type AdWithDetails struct {
	Ad       Ad       `json:"ad"`
	AdSet    AdSet    `json:"adSet"`
	Campaign Campaign `json:"campaign"`
	Creative Creative `json:"creative"`
}

type Targeting struct {
	GeoLocations *GeoLocations `json:"geo_locations,omitempty"`
	AgeMin       *int          `json:"age_min,omitempty"`
	AgeMax       *int          `json:"age_max,omitempty"`
	Genders      []int         `json:"genders,omitempty"`
}

type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
}

type CreateAdRequest struct {
	CampaignID    int        `json:"campaignId"`
	Name          string     `json:"name"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	CallToAction  string     `json:"callToAction"`
	LinkURL       string     `json:"linkUrl"`
	ImageURL      *string    `json:"imageUrl,omitempty"`
	VideoURL      *string    `json:"videoUrl,omitempty"`
	DailyBudget   *int       `json:"dailyBudget,omitempty"`
	Targeting     *Targeting `json:"targeting,omitempty"`
	GeneratedByAI bool       `json:"generatedByAi"`
}

type PublishAdRequest struct {
	PageID string `json:"pageId"`
}

type CreateAdResponse struct {
	AdID       int `json:"adId"`
	AdSetID    int `json:"adSetId"`
	CreativeID int `json:"creativeId"`
}
