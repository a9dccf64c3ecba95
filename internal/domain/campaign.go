package domain

import "time"

type Campaign struct {
	ID             int        `json:"id"`
	UserID         int        `json:"userId"`
	MetaAccountID  int        `json:"metaAccountId"`
	MetaCampaignID *string    `json:"metaCampaignId,omitempty"`
	Name           string     `json:"name"`
	Objective      string     `json:"objective"`
	Status         Status     `json:"status"`
	SyncStatus     SyncStatus `json:"syncStatus"`
	SyncError      *string    `json:"syncError,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type CreateCampaignRequest struct {
	MetaAccountID int    `json:"metaAccountId"`
	Name          string `json:"name"`
	Objective     string `json:"objective"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SyncUpdate descreve a mudança de estado de sincronização de uma linha.
type SyncUpdate struct {
	ExternalID *string
	Status     *Status
	SyncStatus SyncStatus
	SyncError  *string
}
