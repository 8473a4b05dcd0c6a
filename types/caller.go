package types

// Caller is the request-scoped identity resolved by the auth middleware.
// Services take it explicitly instead of reading ambient session state.
type Caller struct {
	UserID    uint   `json:"user_id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}
