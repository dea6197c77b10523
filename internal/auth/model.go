package auth

// User is the account shell created at the first onboarding step.
// Profile fields are filled in later by the wizard's final patch.
type User struct {
	ID               string
	Username         string
	Email            string
	Password         string
	UserType         string
	IsEmailVerified  bool
	ProfileCompleted bool
}
