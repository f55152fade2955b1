package ui

import (
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/kdarade/portfolio/internal/contact"
	"github.com/kdarade/portfolio/internal/content"
)

// Host libraries the page hands icons and animations to.
const (
	lucideScript        = "https://unpkg.com/lucide@0.468.0/dist/umd/lucide.min.js"
	gsapScript          = "https://cdn.jsdelivr.net/npm/gsap@3.12.5/dist/gsap.min.js"
	scrollTriggerScript = "https://cdn.jsdelivr.net/npm/gsap@3.12.5/dist/ScrollTrigger.min.js"
)

// Shell is the page's UI-only state.
type Shell struct {
	DarkMode bool
	MenuOpen bool
	Scrolled bool
}

// FormEndpoints says where the contact form goes. Action receives the
// urlencoded post when scripts are off; Endpoint receives the JSON post
// made by the page script.
type FormEndpoints struct {
	Action   string
	Endpoint string
}

// Page is everything needed to render the document.
type Page struct {
	Profile *content.Profile
	Shell   Shell
	Form    contact.Snapshot
	Target  FormEndpoints

	// AssetBase prefixes style.css and script.js, e.g. "/assets".
	AssetBase string

	// ThemeAction is where the dark mode toggle posts. Empty leaves the
	// toggle to the page script.
	ThemeAction string
}

// Render writes the full HTML document for p.
func Render(w io.Writer, p Page) error {
	return Document(p).Render(w)
}

// Document builds the HTML document for p.
func Document(p Page) g.Node {
	prof := p.Profile
	return c.HTML5(c.HTML5Props{
		Title:       prof.FullName() + " | " + prof.Title,
		Description: prof.Tagline,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href(p.AssetBase+"/style.css")),
			Script(Src(lucideScript), g.Attr("defer")),
			Script(Src(gsapScript), g.Attr("defer")),
			Script(Src(scrollTriggerScript), g.Attr("defer")),
			Script(Src(p.AssetBase+"/script.js"), g.Attr("defer")),
		},
		Body: []g.Node{
			Div(
				ID("page"),
				c.Classes{"page": true, "dark": p.Shell.DarkMode},
				navbar(p),
				Main(
					hero(prof),
					about(prof),
					skills(prof),
					projects(prof),
					contactSection(p),
				),
				footer(prof),
			),
			AnimationsScript(DefaultAnimations),
		},
	})
}

// Icon renders a named icon placeholder that the icon library swaps for an
// SVG. Icons are decorative; the surrounding control carries the label.
func Icon(name string, classes ...string) g.Node {
	cls := "icon"
	for _, extra := range classes {
		cls += " " + extra
	}
	return I(Class(cls), Data("lucide", name), Aria("hidden", "true"))
}
