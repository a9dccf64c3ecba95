package mercadopago

const (
	preapprovalPending    = "pending"
	preapprovalAuthorized = "authorized"
	preapprovalPaused     = "paused"
	preapprovalCancelled  = "cancelled"
)

type notification struct {
	ID     any    `json:"id"`
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID            string `json:"id"`
		PreapprovalID string `json:"preapproval_id"`
	} `json:"data"`
}
