package models

import "time"

// SEOEntry holds per-page metadata served to the Next.js frontend. The page
// slug is the unique key.
type SEOEntry struct {
	Page        string    `json:"page" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Keywords    string    `json:"keywords" bson:"keywords"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
