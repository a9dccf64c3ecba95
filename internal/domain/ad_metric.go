package domain

import "time"

// AdMetric é o retrato diário das métricas de um anúncio.
// Spend e CPC em centavos, CTR multiplicado por 10000.
type AdMetric struct {
	ID          int       `json:"id"`
	AdID        int       `json:"adId"`
	Date        time.Time `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Spend       int       `json:"spend"`
	Reach       int       `json:"reach"`
	Conversions int       `json:"conversions"`
	CTR         int       `json:"ctr"`
	CPC         int       `json:"cpc"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DatePreset string

const (
	DatePresetToday     DatePreset = "today"
	DatePresetYesterday DatePreset = "yesterday"
	DatePresetLast7d    DatePreset = "last_7d"
	DatePresetLast30d   DatePreset = "last_30d"
	DatePresetLifetime  DatePreset = "lifetime"
)

func ParseDatePreset(s string) (DatePreset, bool) {
	switch p := DatePreset(s); p {
	case "":
		return DatePresetLifetime, true
	case DatePresetToday, DatePresetYesterday, DatePresetLast7d, DatePresetLast30d, DatePresetLifetime:
		return p, true
	default:
		return "", false
	}
}

// AdInsight é o primeiro registro de insights devolvido pela Graph API,
// já convertido para inteiros. Vazio quando não há dados no período.
type AdInsight struct {
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	Spend       int    `json:"spend"`
	Reach       int    `json:"reach"`
	Conversions int    `json:"conversions"`
	CTR         int    `json:"ctr"`
	CPC         int    `json:"cpc"`
	DateStart   string `json:"dateStart,omitempty"`
	DateStop    string `json:"dateStop,omitempty"`
}

func (i *AdInsight) Empty() bool {
	return i == nil || (i.Impressions == 0 && i.Clicks == 0 && i.Spend == 0 && i.Reach == 0 && i.DateStart == "")
}
