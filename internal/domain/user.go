package domain

import "time"

// UserType discriminates the three account roles.
type UserType string

const (
	UserTypeAdvocate UserType = "advocate"
	UserTypeIntern   UserType = "intern"
	UserTypeClient   UserType = "client"
)

// IDType is the kind of identity document submitted at registration.
type IDType string

const (
	IDTypeAadhaar        IDType = "aadhaar"
	IDTypePAN            IDType = "pan"
	IDTypePassport       IDType = "passport"
	IDTypeDrivingLicense IDType = "driving-license"
)

// Specialization is a legal practice area. Shared by advocate
// specializations, intern interests and client case types.
type Specialization string

const (
	SpecCriminal  Specialization = "criminal"
	SpecCivil     Specialization = "civil"
	SpecCorporate Specialization = "corporate"
	SpecFamily    Specialization = "family"
	SpecTaxation  Specialization = "taxation"
	SpecProperty  Specialization = "property"
	SpecLabor     Specialization = "labor"
)

func ValidSpecialization(s Specialization) bool {
	switch s {
	case SpecCriminal, SpecCivil, SpecCorporate, SpecFamily, SpecTaxation, SpecProperty, SpecLabor:
		return true
	}
	return false
}

// User is the role-agnostic account record. Role-specific data lives on
// exactly one of AdvocateProfile, InternProfile or ClientProfile.
type User struct {
	ID           string   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName    string   `gorm:"not null" json:"firstName"`
	LastName     string   `gorm:"not null" json:"lastName"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Mobile       string   `json:"mobile"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Pincode      string   `json:"pincode"`
	UserType     UserType `gorm:"type:varchar(20);not null;index" json:"userType"`
	IDType       IDType   `gorm:"type:varchar(20);not null" json:"idType"`
	// Repository-relative paths into the document store.
	IDProofFront string    `gorm:"not null" json:"idProofFront"`
	IDProofBack  *string   `json:"idProofBack,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
