package metadomain

const (
	StatusActive  = "ACTIVE"
	StatusPaused  = "PAUSED"
	StatusDeleted = "DELETED"

	DefaultBillingEvent     = "IMPRESSIONS"
	DefaultOptimizationGoal = "REACH"
)

type CampaignParams struct {
	Name      string
	Objective string
	Status    string
}

type AdSetParams struct {
	CampaignID       string
	Name             string
	Targeting        map[string]any
	BillingEvent     string
	OptimizationGoal string
	Status           string
	DailyBudget      *int
	LifetimeBudget   *int
	StartTime        string
	EndTime          string
}

type CallToActionSpec struct {
	Type  string            `json:"type"`
	Value map[string]string `json:"value,omitempty"`
}

type LinkData struct {
	Link         string            `json:"link"`
	Message      string            `json:"message,omitempty"`
	Name         string            `json:"name,omitempty"`
	Description  string            `json:"description,omitempty"`
	ImageHash    string            `json:"image_hash,omitempty"`
	CallToAction *CallToActionSpec `json:"call_to_action,omitempty"`
}

type VideoData struct {
	VideoID      string            `json:"video_id"`
	Title        string            `json:"title,omitempty"`
	Message      string            `json:"message,omitempty"`
	ImageURL     string            `json:"image_url,omitempty"`
	CallToAction *CallToActionSpec `json:"call_to_action,omitempty"`
}

type ObjectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *LinkData  `json:"link_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

type AdCreativeParams struct {
	Name            string
	ObjectStorySpec ObjectStorySpec
}

type AdParams struct {
	Name       string
	AdSetID    string
	CreativeID string
	Status     string
}
