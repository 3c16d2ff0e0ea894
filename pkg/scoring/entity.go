package scoring

import (
	"time"

	"github.com/google/uuid"
)

// PointRecord is one persisted ledger row: the last computed points for a
// single category of one codev. At most one row per (codev_id, category).
type PointRecord struct {
	ID        uuid.UUID `json:"id"`
	CodevID   uuid.UUID `json:"codev_id"`
	Category  string    `json:"category"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// BreakdownEntry is a ledger row about to be persisted (no identity yet).
type BreakdownEntry struct {
	CodevID  uuid.UUID `json:"codev_id"`
	Category string    `json:"category"`
	Points   int       `json:"points"`
}

// CategoryDetail reports per-category completion state. ItemCount/MaxItems are
// only present for repeatable categories.
type CategoryDetail struct {
	Completed   bool   `json:"completed"`
	Points      int    `json:"points"`
	MaxPoints   int    `json:"maxPoints"`
	Description string `json:"description,omitempty"`
	ItemCount   *int   `json:"itemCount,omitempty"`
	MaxItems    *int   `json:"maxItems,omitempty"`
}

// SectionSummary is a presentation roll-up of one profile section.
type SectionSummary struct {
	Completed bool `json:"completed"`
	Points    int  `json:"points"`
	MaxPoints int  `json:"maxPoints"`
}

// ProfileSections groups category points into the three fixed UI sections.
type ProfileSections struct {
	BasicInfo        SectionSummary `json:"basicInfo"`
	SocialLinks      SectionSummary `json:"socialLinks"`
	ProfessionalInfo SectionSummary `json:"professionalInfo"`
}

// DataCounts reports raw item counts regardless of caps.
type DataCounts struct {
	WorkExperiences  int `json:"workExperiences"`
	EducationEntries int `json:"educationEntries"`
	TechSkills       int `json:"techSkills"`
	Positions        int `json:"positions"`
}

// Summary is the derived, never-persisted roll-up returned with each response.
type Summary struct {
	ProfileSections ProfileSections `json:"profileSections"`
	DataCounts      DataCounts      `json:"datacounts"`
}

// Result is the full scoring response body.
type Result struct {
	Success              bool                      `json:"success"`
	TotalPoints          int                       `json:"totalPoints"`
	MaxPossiblePoints    int                       `json:"maxPossiblePoints"`
	CompletionPercentage int                       `json:"completionPercentage"`
	PointsCount          int                       `json:"pointsCount"`
	Points               []PointRecord             `json:"points"`
	Breakdown            []BreakdownEntry          `json:"breakdown"`
	CompletionDetails    map[string]CategoryDetail `json:"completionDetails"`
	Summary              Summary                   `json:"summary"`
}
