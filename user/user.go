package user

// User represents a user in the system. Ids are used as lookup keys but are
// not required to be unique.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Default returns the default guest user.
func Default() User {
	return User{
		ID:    0,
		Name:  "Guest",
		Email: "guest@example.com",
	}
}
