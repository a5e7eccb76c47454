package models

import "time"

// GlobalLabel is an admin-curated category. Only active labels are
// auto-included as prediction candidates; the name is unique across active
// and inactive labels alike.
type GlobalLabel struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Label       string     `gorm:"not null;unique" json:"label" form:"label"`
	Description string     `gorm:"type:text" json:"description" form:"description"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
