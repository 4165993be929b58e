package domain

import "time"

// Review is one client review embedded on an advocate profile.
type Review struct {
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimeRange is one availability window within a weekday.
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AdvocateProfile extends a User with userType advocate, one-to-one.
type AdvocateProfile struct {
	ID             string                 `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         string                 `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User           *User                  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	BarCouncilID   string                 `gorm:"uniqueIndex;not null" json:"barCouncilId"`
	LawDegree      string                 `gorm:"not null" json:"lawDegree"`
	Specialization Specialization         `gorm:"type:varchar(20);not null" json:"specialization"`
	Experience     int                    `gorm:"not null" json:"experience"`
	Fees           float64                `gorm:"not null" json:"fees"`
	Bio            string                 `json:"bio"`
	Rating         float64                `gorm:"default:0" json:"rating"`
	Reviews        []Review               `gorm:"type:jsonb;serializer:json" json:"reviews"`
	Cases          []string               `gorm:"type:jsonb;serializer:json" json:"cases"`
	Availability   map[string][]TimeRange `gorm:"type:jsonb;serializer:json" json:"availability"`
	CreatedAt      time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdvocateProfile) TableName() string { return "advocate_profiles" }

// AddReview appends a review and recomputes the aggregate rating as the
// arithmetic mean of all review ratings.
func (a *AdvocateProfile) AddReview(r Review) {
	a.Reviews = append(a.Reviews, r)
	total := 0
	for _, rev := range a.Reviews {
		total += rev.Rating
	}
	a.Rating = float64(total) / float64(len(a.Reviews))
}
