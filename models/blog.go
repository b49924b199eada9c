package models

import "time"

// Blog statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// Blog is an admin-authored blog post. IDs are generated strings rather than
// ObjectIDs so existing frontend links keep working.
type Blog struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Content     string    `json:"content" bson:"content"`
	Excerpt     string    `json:"excerpt" bson:"excerpt"`
	Author      string    `json:"author" bson:"author"`
	Status      string    `json:"status" bson:"status"`
	Tags        []string  `json:"tags" bson:"tags"`
	PublishedAt string    `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
