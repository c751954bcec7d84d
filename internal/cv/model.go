package cv

// MaxSkills caps the skills list per record.
const MaxSkills = 20

// Record is one user's CV aggregate. It owns its experience, education and
// skill collections; nothing is shared across records. A record is addressed
// by an opaque user identifier, not by an authenticated principal.
type Record struct {
	Name        string       `json:"name" validate:"required"`
	Email       string       `json:"email" validate:"required,email"`
	Phone       string       `json:"phone" validate:"required"`
	Location    string       `json:"location"`
	LinkedinURL string       `json:"linkedinUrl" validate:"omitempty,httpurl"`
	Summary     string       `json:"summary" validate:"required"`
	Experiences []Experience `json:"experiences" validate:"dive"`
	Education   []Education  `json:"education" validate:"dive"`
	Skills      []string     `json:"skills" validate:"max=20,unique,dive,required"`
}

// Experience is one employment period. Entries keep insertion order, which is
// not necessarily chronological.
type Experience struct {
	Company     string `json:"company" validate:"required"`
	Title       string `json:"title" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,cvdate"`
	EndDate     string `json:"endDate" validate:"omitempty,cvdate"`
	Description string `json:"description" validate:"required"`
	IsCurrent   bool   `json:"isCurrent"`
}

// Education is one study period.
type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,cvdate"`
	EndDate     string `json:"endDate" validate:"omitempty,cvdate"`
	IsCurrent   bool   `json:"isCurrent"`
}
