package models

// Post is a piece of text published by a user.
type Post struct {
	// ID is the server-assigned identifier of the post.
	ID int64 `json:"id"`

	// Text is the body of the post. Must be non-empty.
	Text string `json:"text"`

	// UserID references the owning [User]. The user must exist when the
	// post is created.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
