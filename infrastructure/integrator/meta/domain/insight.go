package metadomain

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight guarda os valores como a Graph API devolve: números em string.
type Insight struct {
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Spend       string   `json:"spend"`
	Reach       string   `json:"reach"`
	CTR         string   `json:"ctr"`
	CPC         string   `json:"cpc"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

var (
	AdInsightFields       = []string{"impressions", "clicks", "spend", "reach", "ctr", "cpc", "actions"}
	CampaignInsightFields = []string{"impressions", "clicks", "spend", "reach"}
)

// ConversionActionTypes lista as ações contadas como conversão.
var ConversionActionTypes = map[string]bool{
	"lead":                                 true,
	"purchase":                             true,
	"complete_registration":                true,
	"offsite_conversion":                   true,
	"offsite_conversion.fb_pixel_purchase": true,
	"offsite_conversion.fb_pixel_lead":     true,
	"offsite_conversion.fb_pixel_complete_registration": true,
	"onsite_conversion.purchase":                        true,
	"onsite_conversion.lead_grouped":                    true,
	"app_install":                                       true,
}
