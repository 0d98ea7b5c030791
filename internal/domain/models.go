// Package domain defines the persistence models for users, recipes, and
// discussion posts. These types are mapped with GORM and form the core data
// layer of the recipe application.
//
// The three collections are deliberately independent: there are no foreign
// keys between them and no cross-table integrity is assumed anywhere in the
// application.
package domain

import "time"

// Category values accepted for a recipe. The constraint is enforced at the
// service layer, not by the store.
const (
	CategoryVegetarian    = "Vegetarian"
	CategoryNonVegetarian = "Non-Vegetarian"
)

// User represents a registered account. Accounts exist only to reserve a
// unique username; there is no session or authorization model.
//
// Fields:
//   - ID: auto-incrementing primary key.
//   - Username: unique handle chosen at registration.
//   - Password: bcrypt hash of the registration password (never the
//     plaintext, and never serialized in API responses).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID        uint      `json:"id"       gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(64);not null;uniqueIndex:ux_user_username"`
	Password  string    `json:"-"        gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "user" }

// Recipe is a user-authored recipe. Ingredients and instructions are
// free-text blobs (typically newline- or comma-separated items); no
// structure is imposed on them at storage level.
//
// Fields:
//   - ID: auto-incrementing primary key.
//   - Title: recipe name; searched with a substring match.
//   - Ingredients: free-text ingredient list.
//   - Instructions: free-text preparation steps.
//   - Category: "Vegetarian" or "Non-Vegetarian"; immutable after creation.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM (UpdatedAt also
//     feeds the ETag stats query on the list endpoint).
type Recipe struct {
	ID           uint      `json:"id"           gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title"        gorm:"type:varchar(255);not null"`
	Ingredients  string    `json:"ingredients"  gorm:"type:text;not null"`
	Instructions string    `json:"instructions" gorm:"type:text;not null"`
	Category     string    `json:"category"     gorm:"type:varchar(32);not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for Recipe.
func (Recipe) TableName() string { return "recipe" }

// Discussion is a single forum post. Posts are append-only: they are never
// updated or deleted once written.
//
// Fields:
//   - ID: auto-incrementing primary key.
//   - Username: display name of the poster (caller-supplied identity).
//   - Content: post body.
//   - ImageURL: optional stored file name of an attached image. The bytes
//     themselves live in the upload directory, not in the store.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Discussion struct {
	ID        uint      `json:"id"        gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username"  gorm:"type:varchar(64);not null"`
	Content   string    `json:"content"   gorm:"type:text;not null"`
	ImageURL  *string   `json:"image_url,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Discussion.
func (Discussion) TableName() string { return "discussion" }
