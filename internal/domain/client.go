package domain

import "time"

// ClientProfile extends a User with userType client, one-to-one.
type ClientProfile struct {
	ID                 string         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             string         `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User               *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Occupation         string         `gorm:"not null;default:'Not Specified'" json:"occupation"`
	CompanyName        string         `json:"companyName"`
	CaseHistory        []string       `gorm:"type:jsonb;serializer:json" json:"caseHistory"`
	PreferredLanguages []string       `gorm:"type:jsonb;serializer:json" json:"preferredLanguages"`
	Budget             float64        `gorm:"default:0" json:"budget"`
	PreferredLocation  string         `json:"preferredLocation"`
	CaseType           Specialization `gorm:"type:varchar(20);default:'civil'" json:"caseType"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClientProfile) TableName() string { return "client_profiles" }

// PreferredLanguage tokens accepted on a client profile.
var PreferredLanguage = map[string]bool{
	"English": true, "Hindi": true, "Marathi": true, "Gujarati": true,
	"Bengali": true, "Tamil": true, "Telugu": true, "Kannada": true,
	"Malayalam": true,
}
