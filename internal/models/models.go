package models

import (
	"time"
)

const (
	RecipeStatusDraft     = "draft"
	RecipeStatusPublished = "published"

	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusSpam     = "spam"

	RoleAdmin = "admin"
)

type Recipe struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Intro       string    `json:"intro"`
	Image       string    `json:"image"`
	Categories  []string  `json:"categories"`
	Tags        []string  `json:"tags"`
	PrepTime    string    `json:"prep_time"`
	CookTime    string    `json:"cook_time"`
	Servings    string    `json:"servings"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	Featured    bool      `json:"featured"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentThread is a top-level comment with its direct replies.
type CommentThread struct {
	Comment
	Replies []Comment `json:"replies"`
}

// Category is derived from the recipes collection, never persisted.
type Category struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	RecipeCount int    `json:"recipe_count"`
}

type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MediaFile is derived from a directory listing under the uploads root.
type MediaFile struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Directory  string    `json:"directory"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

type AboutSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Pinterest string `json:"pinterest"`
}

type AboutPage struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Image    string         `json:"image"`
	Intro    string         `json:"intro"`
	Sections []AboutSection `json:"sections"`
	Email    string         `json:"email"`
	Social   SocialLinks    `json:"social"`
}

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
