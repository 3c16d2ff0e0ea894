package scoring

// Section identifies one of the three fixed presentation groups.
type Section string

const (
	SectionBasicInfo        Section = "basicInfo"
	SectionSocialLinks      Section = "socialLinks"
	SectionProfessionalInfo Section = "professionalInfo"
)

// Scored category names. These are the ledger's category keys; renaming one
// orphans its persisted rows until the next recomputation.
const (
	CategoryImageURL          = "image_url"
	CategoryAbout             = "about"
	CategoryPhone             = "phone"
	CategoryAddress           = "address"
	CategoryFacebook          = "facebook"
	CategoryGithub            = "github"
	CategoryLinkedin          = "linkedin"
	CategoryPortfolioWebsite  = "portfolio_website"
	CategoryTechStacks        = "tech_stacks"
	CategoryPositions         = "positions"
	CategoryWorkExperiences   = "work_experiences"
	CategoryEducations        = "educations"
	CategoryYearsOfExperience = "years_of_experience"
)

// Rule describes how one profile attribute is scored. A one-time rule awards
// Points once when the attribute counts as filled (strings may carry a
// MinLength). A repeatable rule awards PointsPerItem per collection item,
// counting at most MaxItems items and never exceeding MaxPoints.
type Rule struct {
	Category    string
	Section     Section
	Description string
	Repeatable  bool

	Points    int // one-time award
	MinLength int // one-time string fields only; 0 means no minimum

	PointsPerItem int
	MaxItems      int

	MaxPoints int // hard ceiling; for one-time rules equals Points
}

// Catalog is the fixed scoring schema: one rule per scored attribute.
// Construct it once with DefaultCatalog and inject it; it is never mutated.
type Catalog struct {
	rules []Rule
	max   int
}

// NewCatalog builds a catalog from the given rules and precomputes the
// maximum possible score.
func NewCatalog(rules []Rule) Catalog {
	total := 0
	for _, r := range rules {
		total += r.MaxPoints
	}
	return Catalog{rules: rules, max: total}
}

// DefaultCatalog returns the platform's scoring schema. Adding a scored
// attribute means adding an entry here; this is the engine's sole extension
// point.
func DefaultCatalog() Catalog {
	return NewCatalog([]Rule{
		{Category: CategoryImageURL, Section: SectionBasicInfo, Description: "Profile photo uploaded", Points: 2, MaxPoints: 2},
		{Category: CategoryAbout, Section: SectionBasicInfo, Description: "About section with at least 50 characters", Points: 5, MinLength: 50, MaxPoints: 5},
		{Category: CategoryPhone, Section: SectionBasicInfo, Description: "Contact phone number", Points: 2, MaxPoints: 2},
		{Category: CategoryAddress, Section: SectionBasicInfo, Description: "Address", Points: 3, MaxPoints: 3},

		{Category: CategoryFacebook, Section: SectionSocialLinks, Description: "Facebook profile link", Points: 2, MaxPoints: 2},
		{Category: CategoryGithub, Section: SectionSocialLinks, Description: "GitHub profile link", Points: 3, MaxPoints: 3},
		{Category: CategoryLinkedin, Section: SectionSocialLinks, Description: "LinkedIn profile link", Points: 3, MaxPoints: 3},
		{Category: CategoryPortfolioWebsite, Section: SectionSocialLinks, Description: "Portfolio website link", Points: 3, MaxPoints: 3},

		{Category: CategoryTechStacks, Section: SectionProfessionalInfo, Description: "Tech stacks (2 points each, up to 10)", Repeatable: true, PointsPerItem: 2, MaxItems: 10, MaxPoints: 20},
		{Category: CategoryPositions, Section: SectionProfessionalInfo, Description: "Declared positions (4 points each, up to 3)", Repeatable: true, PointsPerItem: 4, MaxItems: 3, MaxPoints: 12},
		{Category: CategoryWorkExperiences, Section: SectionProfessionalInfo, Description: "Work experience entries (8 points each, up to 5)", Repeatable: true, PointsPerItem: 8, MaxItems: 5, MaxPoints: 40},
		{Category: CategoryEducations, Section: SectionProfessionalInfo, Description: "Education entries (5 points each, up to 4)", Repeatable: true, PointsPerItem: 5, MaxItems: 4, MaxPoints: 20},
		{Category: CategoryYearsOfExperience, Section: SectionProfessionalInfo, Description: "Years of experience stated", Points: 12, MaxPoints: 12},
	})
}

// Rules returns the catalog entries in evaluation order.
func (c Catalog) Rules() []Rule { return c.rules }

// MaxPossiblePoints is the sum of every rule's ceiling; the denominator of
// the completion percentage.
func (c Catalog) MaxPossiblePoints() int { return c.max }

// SectionMax sums the ceilings of every rule in one section.
func (c Catalog) SectionMax(s Section) int {
	total := 0
	for _, r := range c.rules {
		if r.Section == s {
			total += r.MaxPoints
		}
	}
	return total
}
