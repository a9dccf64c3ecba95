package domain

import "strings"

// Status é o estado local de campanhas, conjuntos de anúncios e anúncios.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusDeleted Status = "deleted"
)

// ParseStatus aceita apenas os estados que o usuário pode solicitar.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusPaused, StatusDeleted:
		return st, true
	default:
		return "", false
	}
}

// Remote devolve o status no formato da Graph API.
func (s Status) Remote() string {
	return strings.ToUpper(string(s))
}

// SyncStatus registra o resultado da última chamada externa de uma linha.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)
