package domain

// User is the owning identity for every entity in the system. The engine
// never reads or writes across users.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
