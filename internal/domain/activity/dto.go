package activity

type EntryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Action     string `json:"action"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}
