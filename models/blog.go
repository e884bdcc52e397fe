package models

import "time"

// Blog represents a single blog post with its embedded comment thread.
// Posts carry no owner reference: any authenticated user may mutate any post.
type Blog struct {
	// BlogID is the internal unique identifier of the post.
	BlogID int64 `json:"id"`

	// Title is the post headline. Required on creation.
	Title string `json:"title"`

	// Content is the post body. Required on creation.
	Content string `json:"content"`

	// Comments is the ordered comment thread of the post.
	// Populated only on single-post reads; list reads omit it.
	Comments []Comment `json:"comments,omitempty"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last post mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// BlogUpdate carries the mutable fields of a post update request.
// Nil fields are left untouched (partial update support).
type BlogUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Comment is a single entry in a post's comment thread.
//
// UserID is a weak reference to the authoring user: it does not imply
// ownership or cascade deletion. AuthorName and AuthorAvatar are resolved
// by a read-time join and are empty on write paths.
type Comment struct {
	// CommentID is the internal unique identifier of the comment.
	// Insertion order of a thread is CommentID ascending.
	CommentID int64 `json:"id"`

	// BlogID identifies the post the comment belongs to.
	BlogID int64 `json:"blog_id"`

	// UserID identifies the authoring user.
	UserID int64 `json:"user_id"`

	// AuthorName is the display name of the authoring user,
	// resolved at read time.
	AuthorName string `json:"author_name,omitempty"`

	// AuthorAvatar is the avatar URL of the authoring user,
	// resolved at read time.
	AuthorAvatar string `json:"author_avatar,omitempty"`

	// Text is the comment body. Required.
	Text string `json:"text"`

	// CreatedAt is the timestamp when the comment was appended.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
