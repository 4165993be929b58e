package domain

import "time"

// Achievement is one intern achievement entry.
type Achievement struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Certification is one intern certification entry.
type Certification struct {
	Name   string    `json:"name"`
	Issuer string    `json:"issuer"`
	Date   time.Time `json:"date"`
	URL    string    `json:"url"`
}

// InternProfile extends a User with userType intern, one-to-one.
type InternProfile struct {
	ID             string           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         string           `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User           *User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	SchoolName     string           `gorm:"not null" json:"schoolName"`
	CurrentYear    int              `gorm:"not null" json:"currentYear"`
	Interests      []Specialization `gorm:"type:jsonb;serializer:json" json:"interests"`
	Resume         string           `gorm:"not null" json:"resume"`
	StudentID      string           `gorm:"not null" json:"studentId"`
	Applications   []string         `gorm:"type:jsonb;serializer:json" json:"applications"`
	Skills         []string         `gorm:"type:jsonb;serializer:json" json:"skills"`
	Achievements   []Achievement    `gorm:"type:jsonb;serializer:json" json:"achievements"`
	Certifications []Certification  `gorm:"type:jsonb;serializer:json" json:"certifications"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InternProfile) TableName() string { return "intern_profiles" }
