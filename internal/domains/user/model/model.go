package model

const (
	EntityName = "user"
)

// User is a registered account. Passwords are kept and compared as plain text.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Admin    bool   `json:"admin"`
}
