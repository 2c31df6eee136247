package domain

// User is the signed-in account as reported by the backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName returns the name, or the email when no name is set.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Credentials is what the backend issues on a successful sign-in.
type Credentials struct {
	AccessToken string
	User        User
}
