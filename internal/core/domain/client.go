package domain

// Client represents a billable customer of the business.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (UUID)
	UserID   string `json:"userID"`   // Owning dashboard user
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	// Address may contain embedded newlines; invoice rendering splits it
	// into one printed line per segment.
	Address string `json:"address,omitempty"`
	Company string `json:"company,omitempty"`
	AuditFields
}
