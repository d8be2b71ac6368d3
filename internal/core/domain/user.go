package domain

// User is an account holder.
type User struct {
	ID    int
	Email string
}
