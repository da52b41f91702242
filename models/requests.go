package models

// UserRequest is the JSON body accepted when creating or renaming a user.
type UserRequest struct {
	Name string `json:"name"`
}

// PostRequest is the JSON body accepted when creating a post.
type PostRequest struct {
	Text string `json:"text"`
}
