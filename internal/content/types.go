// Package content holds the immutable profile data rendered by the page:
// owner details, skills, projects and navigation links.
package content

// Profile is everything the page says about its owner.
type Profile struct {
	FirstName string    `yaml:"first_name"`
	LastName  string    `yaml:"last_name"`
	Title     string    `yaml:"title"`
	Tagline   string    `yaml:"tagline"`
	About     []string  `yaml:"about"` // markdown paragraphs
	Location  string    `yaml:"location"`
	Email     string    `yaml:"email"`
	Phone     string    `yaml:"phone"`
	Avatar    string    `yaml:"avatar"`
	GitHub    string    `yaml:"github"`
	LinkedIn  string    `yaml:"linkedin"`
	Pitch     string    `yaml:"pitch"` // contact section lead
	Copyright string    `yaml:"copyright"`
	Skills    []Skill   `yaml:"skills"`
	Projects  []Project `yaml:"projects"`
}

// FullName joins first and last name.
func (p *Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Skill is one tile of the skills grid.
type Skill struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// Project is one card of the projects grid. Color is a pair of gradient
// stops written as "from-to", e.g. "orange-400 red-500".
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"` // markdown
	Tech        []string `yaml:"tech"`
	Color       string   `yaml:"color"`
	Link        string   `yaml:"link"`
}

// Section identifiers, used as element ids and scroll targets.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// NavLink is a navigation entry scrolling to a section.
type NavLink struct {
	Name    string
	Section string
}

// Href is the in-page anchor for the link.
func (l NavLink) Href() string { return "#" + l.Section }

// NavLinks is the fixed navigation bar.
var NavLinks = []NavLink{
	{Name: "Home", Section: SectionHome},
	{Name: "About", Section: SectionAbout},
	{Name: "Skills", Section: SectionSkills},
	{Name: "Projects", Section: SectionProjects},
	{Name: "Contact", Section: SectionContact},
}
