package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the scorable attributes of a codev. Scalar fields are pointers:
// a nil value means the column is NULL (never filled), which the scoring engine
// treats the same as absent.
type Profile struct {
	CodevID           uuid.UUID `json:"codev_id"`
	ImageURL          *string   `json:"image_url,omitempty"`
	About             *string   `json:"about,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Address           *string   `json:"address,omitempty"`
	Facebook          *string   `json:"facebook,omitempty"`
	Github            *string   `json:"github,omitempty"`
	Linkedin          *string   `json:"linkedin,omitempty"`
	PortfolioWebsite  *string   `json:"portfolio_website,omitempty"`
	TechStacks        []string  `json:"tech_stacks,omitempty"`
	Positions         []string  `json:"positions,omitempty"`
	YearsOfExperience *int      `json:"years_of_experience,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WorkExperience is a one-to-many child of Profile, edited independently.
type WorkExperience struct {
	ID          uuid.UUID `json:"id"`
	CodevID     uuid.UUID `json:"codev_id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Description string    `json:"description,omitempty"`
	DateFrom    string    `json:"date_from"` // YYYY-MM or free text
	DateTo      string    `json:"date_to"`   // YYYY-MM or "present"
	CreatedAt   time.Time `json:"created_at"`
}

// Education is a one-to-many child of Profile.
type Education struct {
	ID          uuid.UUID `json:"id"`
	CodevID     uuid.UUID `json:"codev_id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	DateFrom    string    `json:"date_from"`
	DateTo      string    `json:"date_to"`
	CreatedAt   time.Time `json:"created_at"`
}

// Snapshot is everything the scoring engine reads for one codev: the profile
// row plus both child collections, loaded in a single repository call.
type Snapshot struct {
	Profile         Profile          `json:"profile"`
	WorkExperiences []WorkExperience `json:"work_experiences"`
	Educations      []Education      `json:"educations"`
}
