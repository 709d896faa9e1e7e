package models

// Category is a per-user label used to group credentials on the dashboard.
// Pure CRUD; carries no secret material.
type Category struct {
	CategoryID int64  `json:"id"`
	UserID     int64  `json:"-"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
