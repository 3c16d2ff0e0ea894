package scoring

import (
	"math"

	"github.com/codevhq/scoring/pkg/profile"
)

// Computation is the outcome of one evaluation pass over a profile snapshot,
// before the ledger is refreshed.
type Computation struct {
	Total     int
	Breakdown []BreakdownEntry
	Details   map[string]CategoryDetail
	Counts    DataCounts
}

// Evaluate runs every catalog rule against the snapshot and assembles the
// total, the ledger rows to persist, and the per-category details. Categories
// with zero points get a detail entry but no breakdown row.
func (c Catalog) Evaluate(snap profile.Snapshot) Computation {
	comp := Computation{
		Details: make(map[string]CategoryDetail, len(c.rules)),
		Counts: DataCounts{
			WorkExperiences:  len(snap.WorkExperiences),
			EducationEntries: len(snap.Educations),
			TechSkills:       len(snap.Profile.TechStacks),
			Positions:        len(snap.Profile.Positions),
		},
	}

	for _, rule := range c.rules {
		var pts int
		detail := CategoryDetail{MaxPoints: rule.MaxPoints, Description: rule.Description}

		if rule.Repeatable {
			n := collectionSize(snap, rule.Category)
			pts = collectionPoints(n, rule)
			itemCount, maxItems := n, rule.MaxItems
			detail.ItemCount = &itemCount
			detail.MaxItems = &maxItems
		} else if fieldCounts(scalarValue(snap.Profile, rule.Category), rule) {
			pts = rule.Points
		}

		detail.Points = pts
		detail.Completed = pts >= rule.MaxPoints
		comp.Details[rule.Category] = detail

		if pts > 0 {
			comp.Breakdown = append(comp.Breakdown, BreakdownEntry{
				CodevID:  snap.Profile.CodevID,
				Category: rule.Category,
				Points:   pts,
			})
			comp.Total += pts
		}
	}
	return comp
}

// Percentage maps a total onto 0..100, rounded.
func (c Catalog) Percentage(total int) int {
	if c.max == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(c.max) * 100))
}

// Sections projects the per-category details onto the three fixed groups. It
// is a pure roll-up of numbers already in the details; no rescoring happens
// here.
func (c Catalog) Sections(details map[string]CategoryDetail) ProfileSections {
	build := func(s Section) SectionSummary {
		sum := SectionSummary{MaxPoints: c.SectionMax(s)}
		for _, r := range c.rules {
			if r.Section != s {
				continue
			}
			if d, ok := details[r.Category]; ok {
				sum.Points += d.Points
			}
		}
		sum.Completed = sum.Points >= sum.MaxPoints
		return sum
	}
	return ProfileSections{
		BasicInfo:        build(SectionBasicInfo),
		SocialLinks:      build(SectionSocialLinks),
		ProfessionalInfo: build(SectionProfessionalInfo),
	}
}

// scalarValue looks up a one-time attribute on the profile row. Nil pointers
// come back as untyped nil, so a NULL column and a missing value evaluate
// identically.
func scalarValue(p profile.Profile, category string) any {
	switch category {
	case CategoryImageURL:
		return deref(p.ImageURL)
	case CategoryAbout:
		return deref(p.About)
	case CategoryPhone:
		return deref(p.Phone)
	case CategoryAddress:
		return deref(p.Address)
	case CategoryFacebook:
		return deref(p.Facebook)
	case CategoryGithub:
		return deref(p.Github)
	case CategoryLinkedin:
		return deref(p.Linkedin)
	case CategoryPortfolioWebsite:
		return deref(p.PortfolioWebsite)
	case CategoryYearsOfExperience:
		if p.YearsOfExperience == nil {
			return nil
		}
		return *p.YearsOfExperience
	default:
		return nil
	}
}

func collectionSize(snap profile.Snapshot, category string) int {
	switch category {
	case CategoryTechStacks:
		return len(snap.Profile.TechStacks)
	case CategoryPositions:
		return len(snap.Profile.Positions)
	case CategoryWorkExperiences:
		return len(snap.WorkExperiences)
	case CategoryEducations:
		return len(snap.Educations)
	default:
		return 0
	}
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
