package domain

import "time"

type MetaAccount struct {
	ID                int        `json:"id"`
	UserID            int        `json:"userId"`
	MetaUserID        *string    `json:"metaUserId,omitempty"`
	AccessToken       string     `json:"-"`
	TokenExpiresAt    *time.Time `json:"tokenExpiresAt,omitempty"`
	AdAccountID       string     `json:"adAccountId"`
	AdAccountName     *string    `json:"adAccountName,omitempty"`
	BusinessManagerID *string    `json:"businessManagerId,omitempty"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type ConnectMetaAccountRequest struct {
	AccessToken string `json:"accessToken"`
	AdAccountID string `json:"adAccountId"`
}

// AdAccountInfo é o recorte da conta de anúncios devolvido pela Graph API.
type AdAccountInfo struct {
	ID           string `json:"id"`
	AccountID    string `json:"account_id"`
	Name         string `json:"name"`
	Currency     string `json:"currency,omitempty"`
	TimezoneName string `json:"timezone_name,omitempty"`
}

type LongLivedToken struct {
	AccessToken string
	ExpiresAt   *time.Time
}
