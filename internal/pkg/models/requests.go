package models

// AutoQuoteRequest is the body of a user's valuation request
type AutoQuoteRequest struct {
	RegNumber string `json:"reg_number"`
}

// ManualQuoteRequest carries the user-supplied data for a manual review
// request. The vehicle attribute fields are merged into the snapshot only
// where the fetched data left gaps.
type ManualQuoteRequest struct {
	Images             []string `json:"images"`
	UserEstimatedPrice *float64 `json:"user_estimated_price,omitempty"`
	UserProvidedWeight *float64 `json:"user_provided_weight,omitempty"`
	Message            string   `json:"message,omitempty"`

	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	FuelType string `json:"fuel_type,omitempty"`
	Year     int    `json:"year,omitempty"`
}

// CollectionRequest is the accept-with-details body: the client accepts the
// offered price and supplies pickup logistics in one step
type CollectionRequest struct {
	PickupDate    string `json:"pickup_date"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// RejectQuoteRequest carries the client's rejection of a reviewed offer
type RejectQuoteRequest struct {
	Reason string `json:"reason"`
}

// ReviewQuoteRequest is the admin's pricing decision on a pending manual quote
type ReviewQuoteRequest struct {
	OfferPrice *float64 `json:"offer_price"`
	Message    string   `json:"message,omitempty"`
}

// RegisterRequest is the signup body
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// LoginRequest is the credential body for token issuance
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdateRequest carries the mutable profile fields. Nil pointers leave
// the stored value untouched.
type UserUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty"`
}
