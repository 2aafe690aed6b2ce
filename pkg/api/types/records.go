// Package types defines the shared payloads of the studio back-office API.
//
// These are the wire shapes exchanged with the server; they carry no
// behavior beyond JSON mapping.
package types

import "time"

// ClientRecord is a studio client as returned by /api/clients.
type ClientRecord struct {
	ID        int64      `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Instagram string     `json:"instagram,omitempty"`
	Birthdate string     `json:"birthdate,omitempty"` // YYYY-MM-DD
	Notes     string     `json:"notes,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Payment is a recorded payment, optionally tied to a session.
type Payment struct {
	ID        int64      `json:"id,omitempty"`
	ClientID  int64      `json:"clientId"`
	SessionID *int64     `json:"sessionId,omitempty"`
	Amount    float64    `json:"amount"`
	Method    string     `json:"method,omitempty"` // cash, card, transfer, pix
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// Session is a scheduled or completed studio appointment.
type Session struct {
	ID          int64      `json:"id,omitempty"`
	ClientID    int64      `json:"clientId"`
	Artist      string     `json:"artist,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	DurationMin int        `json:"durationMin,omitempty"`
	Status      string     `json:"status,omitempty"` // scheduled, done, cancelled, no-show
	Price       float64    `json:"price,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// InventoryItem is a stocked supply (inks, needles, gloves, aftercare).
type InventoryItem struct {
	ID           int64      `json:"id,omitempty"`
	Name         string     `json:"name"`
	SKU          string     `json:"sku,omitempty"`
	Quantity     int        `json:"quantity"`
	Unit         string     `json:"unit,omitempty"`
	ReorderLevel int        `json:"reorderLevel,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}
