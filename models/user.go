package models

// User is an account that owns zero or more posts.
type User struct {
	// ID is the server-assigned identifier. It is stable for the lifetime of
	// the record and never reused.
	ID int64 `json:"id"`

	// Name is the display name of the user. Must be non-empty.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
