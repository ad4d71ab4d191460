package entities

import "time"

// User type discriminator.
const (
	UserTypePlain   = "user"
	UserTypeCompany = "company"
)

const RoleVolunteer = "Volunteer"

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `json:"name"`
	Email    string  `gorm:"uniqueIndex" json:"email"`
	Password string  `json:"-"`
	Type     string  `json:"type"` // user|company
	Role     *string `json:"role,omitempty"`

	Company   *Company   `json:"company,omitempty"`
	Locations []Location `gorm:"foreignKey:UserID" json:"location,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Company is 1:1-owned by a company-typed user.
type Company struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex" json:"user_id"`
	TIN    string `json:"tin"`
	Logo   string `json:"logo"`

	User      User       `json:"user,omitempty"`
	Locations []Location `gorm:"foreignKey:CompanyID" json:"location,omitempty"`

	CreatedAt time.Time
}
