// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// Banner is a promotional asset shown in client apps. Its Category relation
// is populated declaratively by the store.
type Banner struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	ImageURL   string     `json:"imageUrl"`
	TargetURL  string     `json:"targetUrl"`
	Active     bool       `json:"active"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	Category   *Category  `json:"category,omitempty"` // nil when the reference dangles.
	Audit
}

// Category is a node in the flat-with-parent catalog taxonomy.
type Category struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Slug     string      `json:"slug"`
	ParentID *uuid.UUID  `json:"parentId,omitempty"`
	Parent   *Category   `json:"parent,omitempty"`
	Children []*Category `json:"children,omitempty"`
	Audit
}

// Country is reference data consulted by registration and shipping flows.
type Country struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ISO2     string    `json:"iso2"`
	DialCode string    `json:"dialCode"`
	Active   bool      `json:"active"`
	Audit
}

// Notification is a message addressed to a user. Sender is optional: system
// notifications carry no sender, and a sender deleted after the fact leaves
// the relation dangling, which populates to nil.
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Channel     string     `json:"channel"`
	Read        bool       `json:"read"`
	RecipientID uuid.UUID  `json:"recipientId"`
	SenderID    *uuid.UUID `json:"senderId,omitempty"`
	Sender      *User      `json:"sender,omitempty"`
	Audit
}
