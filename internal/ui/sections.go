package ui

import (
	"regexp"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/kdarade/portfolio/internal/content"
)

func hero(p *content.Profile) g.Node {
	return Section(
		ID(content.SectionHome), Class("hero"),
		Div(Class("hero-orbs"), Aria("hidden", "true"),
			Div(Class("orb orb-top")), Div(Class("orb orb-bottom")),
		),
		Div(
			Class("section-inner hero-grid"),
			Div(
				Class("hero-content"),
				H1(
					Class("hero-title"),
					Span(g.Text("Hi,")), g.Text(" "),
					Span(g.Text("I'm")), g.Text(" "),
					Span(Class("accent"), g.Text(p.FirstName)),
					g.If(p.LastName != "", g.Group{g.Text(" "), Span(Class("accent"), g.Text(p.LastName))}),
				),
				P(Class("hero-subtitle"), g.Text(p.Title)),
				P(Class("hero-desc"), g.Text(p.Tagline)),
				Div(
					Class("hero-cta"),
					A(Class("btn btn-primary"), Href("#"+content.SectionProjects), Data("scroll-to", content.SectionProjects),
						g.Text("View My Work"), Icon("chevron-right", "icon-trailing"),
					),
					A(Class("btn btn-secondary"), Href("#"+content.SectionContact), Data("scroll-to", content.SectionContact),
						g.Text("Get In Touch"),
					),
				),
				Div(Class("hero-social"), socialLinks(p, true)),
			),
			Div(
				Class("hero-avatar"),
				Div(Class("avatar-glow"), Aria("hidden", "true")),
				g.If(p.Avatar != "", Img(Class("avatar"), Src(p.Avatar), Alt(p.FullName()))),
				Div(Class("avatar-badge"), g.Text("👋 Hello!")),
			),
		),
	)
}

// socialLinks renders the profile links. Each is an icon-only anchor, so
// the aria-label is its accessible name.
func socialLinks(p *content.Profile, withEmail bool) g.Node {
	return g.Group{
		g.If(p.GitHub != "", externalLink(p.GitHub, "GitHub Profile", "github")),
		g.If(p.LinkedIn != "", externalLink(p.LinkedIn, "LinkedIn Profile", "linkedin")),
		g.If(withEmail && p.Email != "",
			A(Class("social-link"), Href("mailto:"+p.Email), Aria("label", "Send Email"), Icon("mail")),
		),
	}
}

func externalLink(href, label, icon string) g.Node {
	return A(
		Class("social-link"), Href(href),
		Target("_blank"), Rel("noopener noreferrer"),
		Aria("label", label),
		Icon(icon),
	)
}

func about(p *content.Profile) g.Node {
	return Section(
		ID(content.SectionAbout), Class("about-section"),
		Div(
			Class("section-inner"),
			sectionTitle("About", "Me"),
			g.Map(p.About, func(para string) g.Node {
				return Div(Class("about-text"), markdown(para))
			}),
			Div(
				Class("about-facts"),
				g.If(p.Location != "", Span(Class("fact"), Icon("map-pin", "accent"), g.Text(p.Location))),
				Span(Class("fact"), Icon("mail", "accent"), g.Text(p.Email)),
			),
		),
	)
}

func skills(p *content.Profile) g.Node {
	return Section(
		ID(content.SectionSkills), Class("skills-section"),
		Div(
			Class("section-inner"),
			Div(Class("section-head"),
				sectionTitle("My", "Skills"),
				P(Class("section-lead"), g.Text("Technologies I work with")),
			),
			Ul(
				Class("skills-grid"),
				g.Map(p.Skills, func(s content.Skill) g.Node {
					return Li(Class("skill-card"), Icon(iconOr(s.Icon, "code")), Span(g.Text(s.Name)))
				}),
			),
		),
	)
}

func projects(p *content.Profile) g.Node {
	return Section(
		ID(content.SectionProjects), Class("projects-section"),
		Div(
			Class("section-inner"),
			Div(Class("section-head"),
				sectionTitle("Featured", "Projects"),
				P(Class("section-lead"), g.Text("Some of my recent work")),
			),
			Div(
				Class("projects-grid"),
				g.Map(p.Projects, projectCard),
			),
		),
	)
}

func projectCard(pr content.Project) g.Node {
	return Div(
		Class("project-card"),
		Div(Class("project-cover"), g.Attr("style", gradientStyle(pr.Color)), Icon("code-2")),
		Div(
			Class("project-body"),
			A(Class("project-link"), Href(linkOr(pr.Link)), Target("_blank"), Rel("noopener noreferrer"),
				H3(g.Text(pr.Title)),
			),
			P(Class("project-desc"), inlineMarkdown(pr.Description)),
			Div(Class("tech-tags"),
				g.Map(pr.Tech, func(t string) g.Node { return Span(Class("tech-tag"), g.Text(t)) }),
			),
		),
	)
}

func footer(p *content.Profile) g.Node {
	return Footer(
		Class("site-footer"),
		Div(Class("section-inner"),
			P(g.Text(p.Copyright)),
		),
	)
}

func sectionTitle(lead, accent string) g.Node {
	return H2(Class("section-title"), g.Text(lead+" "), Span(Class("accent"), g.Text(accent)))
}

// paletteToken matches the color names defined in style.css, e.g. "orange-400".
var paletteToken = regexp.MustCompile(`^[a-z]+-[1-9]00$`)

// gradientStyle turns "from to" color names into CSS custom properties.
// Anything else falls back to the brand gradient.
func gradientStyle(color string) string {
	parts := strings.Fields(color)
	if len(parts) != 2 || !paletteToken.MatchString(parts[0]) || !paletteToken.MatchString(parts[1]) {
		return "--from: var(--brand); --to: var(--brand-dark)"
	}
	return "--from: var(--" + parts[0] + "); --to: var(--" + parts[1] + ")"
}

func iconOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func linkOr(link string) string {
	if link == "" {
		return "#"
	}
	return link
}

func markdown(src string) g.Node {
	out, err := content.Markdown(src)
	if err != nil {
		return P(g.Text(src))
	}
	return g.Raw(out)
}

func inlineMarkdown(src string) g.Node {
	out, err := content.InlineMarkdown(src)
	if err != nil {
		return g.Text(src)
	}
	return g.Raw(out)
}
