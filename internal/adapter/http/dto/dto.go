package dto

// RegisterRequest is the request body for team registration.
type RegisterRequest struct {
	TeamSlug   string  `json:"TeamSlug" binding:"required,min=3,max=50,safe_id"`
	Password   string  `json:"Password" binding:"required,min=8,max=128"`
	WebhookURL *string `json:"WebhookURL,omitempty" binding:"omitempty,safe_url"`
}

// LoginRequest is the request body for team dashboard login.
type LoginRequest struct {
	TeamSlug string `json:"TeamSlug" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	TeamID string `json:"TeamId"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"Token"`
	Expiry int64  `json:"Expiry"` // Unix timestamp
}

// PaymentItem mirrors domain.PaymentItem for wire transport.
type PaymentItem struct {
	Name     string `json:"Name" binding:"required,max=200"`
	Price    int64  `json:"Price" binding:"required,gt=0"`
	Quantity int    `json:"Quantity" binding:"required,gt=0"`
}

// InitRequest is the request body for POST /api/v1/init, the merchant-facing
// Init operation: TeamSlug, OrderId, Amount in minor units, ISO-4217
// Currency, optional Data/Items/Receipt, and the canonical-hash Token
// covering every scalar field above.
type InitRequest struct {
	TeamSlug      string            `json:"TeamSlug" binding:"required"`
	OrderID       string            `json:"OrderId" binding:"required,max=100,safe_id"`
	Amount        int64             `json:"Amount" binding:"required,gt=0"`
	Currency      string            `json:"Currency" binding:"required,len=3"`
	Description   string            `json:"Description,omitempty"`
	Email         string            `json:"Email,omitempty"`
	CustomerKey   string            `json:"CustomerKey,omitempty"`
	PaymentExpiry int               `json:"PaymentExpiry,omitempty"`
	Data          map[string]string `json:"Data,omitempty"`
	Items         []PaymentItem     `json:"Items,omitempty" binding:"omitempty,dive"`
	Token         string            `json:"Token" binding:"required"`
}

// PaymentOpRequest is the shared request body for Confirm/Cancel/Refund/
// GetState/Check — all of which accept TeamSlug, PaymentId, Token plus
// operation-specific fields (spec.md §6).
type PaymentOpRequest struct {
	TeamSlug  string `json:"TeamSlug" binding:"required"`
	PaymentID string `json:"PaymentId" binding:"required"`
	Amount    *int64 `json:"Amount,omitempty" binding:"omitempty,gt=0"`
	Reason    string `json:"Reason,omitempty"`
	Token     string `json:"Token" binding:"required"`
}

// PaymentResponse is the canonical merchant-facing response shape:
// {Success, Status, PaymentId, PaymentURL, ErrorCode, Message?, Details?}.
type PaymentResponse struct {
	Success        bool              `json:"Success"`
	Status         string            `json:"Status"`
	PaymentID      string            `json:"PaymentId"`
	OrderID        string            `json:"OrderId,omitempty"`
	PaymentURL     string            `json:"PaymentURL,omitempty"`
	Amount         int64             `json:"Amount,omitempty"`
	Currency       string            `json:"Currency,omitempty"`
	RefundedAmount int64             `json:"RefundedAmount,omitempty"`
	ErrorCode      string            `json:"ErrorCode,omitempty"`
	Message        string            `json:"Message,omitempty"`
	Details        string            `json:"Details,omitempty"`
	Data           map[string]string `json:"Data,omitempty"`
}

// RollbackRequest is the request body for POST /api/v1/payments/rollback,
// the dashboard-facing reversal of a previously recorded transition
// (spec.md §4.2).
type RollbackRequest struct {
	PaymentID    string `json:"PaymentId" binding:"required"`
	TransitionID string `json:"TransitionId" binding:"required,uuid"`
}

// ActivePaymentsResponse wraps a team's non-terminal payments for the
// dashboard's live-operations view.
type ActivePaymentsResponse struct {
	Items []PaymentResponse `json:"items"`
}

// DashboardStatsResponse is the response for dashboard statistics.
type DashboardStatsResponse struct {
	TotalPayments int64 `json:"total_payments"`
	Authorized    int64 `json:"authorized"`
	Confirmed     int64 `json:"confirmed"`
	Cancelled     int64 `json:"cancelled"`
	Refunded      int64 `json:"refunded"`
	Rejected      int64 `json:"rejected"`
	TotalRevenue  int64 `json:"total_revenue"`
	TotalRefunded int64 `json:"total_refunded"`
}

// PaymentListResponse wraps a paginated payment list for the dashboard.
type PaymentListResponse struct {
	Items      []PaymentResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// TeamProfileResponse is the dashboard-facing team profile view.
type TeamProfileResponse struct {
	TeamID     string  `json:"team_id"`
	TeamSlug   string  `json:"team_slug"`
	Status     string  `json:"status"`
	WebhookURL *string `json:"webhook_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// UpdateWebhookRequest is the request body for PATCH /api/v1/team/webhook.
type UpdateWebhookRequest struct {
	WebhookURL *string `json:"webhook_url,omitempty" binding:"omitempty,safe_url"`
}

// RotateWebhookSecretResponse returns the freshly generated plaintext secret.
// Callers must persist it immediately; it is never retrievable again.
type RotateWebhookSecretResponse struct {
	WebhookSecret string `json:"webhook_secret"`
}
