package types

// ErrorResponse is the uniform error body of the back-office API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ClientListResponse envelopes GET /api/clients.
type ClientListResponse struct {
	Clients []*ClientRecord `json:"clients"`
	Count   int             `json:"count"`
}

// PaymentListResponse envelopes GET /api/payments.
type PaymentListResponse struct {
	Payments []*Payment `json:"payments"`
	Count    int        `json:"count"`
}

// SessionListResponse envelopes GET /api/sessions.
type SessionListResponse struct {
	Sessions []*Session `json:"sessions"`
	Count    int        `json:"count"`
}

// InventoryListResponse envelopes GET /api/inventory.
type InventoryListResponse struct {
	Items []*InventoryItem `json:"items"`
	Count int              `json:"count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
