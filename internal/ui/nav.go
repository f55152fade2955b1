package ui

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/kdarade/portfolio/internal/content"
)

func navbar(p Page) g.Node {
	return Nav(
		ID("navbar"),
		c.Classes{"navbar": true, "navbar-scrolled": p.Shell.Scrolled},
		Div(
			Class("section-inner navbar-row"),
			A(
				Class("brand"), Href(content.NavLinks[0].Href()), Data("scroll-to", content.SectionHome),
				g.Text(p.Profile.FirstName), Span(Class("accent"), g.Text(".")),
			),
			Div(
				Class("nav-links"),
				g.Map(content.NavLinks, func(l content.NavLink) g.Node {
					return A(Class("nav-link"), Href(l.Href()), Data("scroll-to", l.Section), g.Text(l.Name))
				}),
				themeToggle(p),
			),
			Div(
				Class("nav-mobile-controls"),
				themeToggle(p),
				menuToggle(p.Shell.MenuOpen),
			),
		),
		mobileMenu(p.Shell.MenuOpen),
	)
}

func themeToggle(p Page) g.Node {
	icon := "moon"
	if p.Shell.DarkMode {
		icon = "sun"
	}
	button := Button(
		Class("theme-toggle"),
		Type("submit"),
		Data("theme-toggle", ""),
		Aria("label", "Toggle dark mode"),
		Aria("pressed", boolString(p.Shell.DarkMode)),
		Icon(icon),
	)
	if p.ThemeAction == "" {
		return button
	}
	return Form(Class("theme-form"), Method("post"), Action(p.ThemeAction), button)
}

func menuToggle(open bool) g.Node {
	href, label, icon := "?menu=open", "Open menu", "menu"
	if open {
		href, label, icon = "?", "Close menu", "x"
	}
	return A(
		Class("menu-toggle"),
		Href(href),
		Data("menu-toggle", ""),
		Aria("label", label),
		Aria("expanded", boolString(open)),
		Aria("controls", "mobile-menu"),
		Icon(icon),
	)
}

// mobileMenu links carry no menu query, so following one closes the menu.
func mobileMenu(open bool) g.Node {
	return Div(
		ID("mobile-menu"),
		c.Classes{"mobile-menu": true, "open": open},
		g.Map(content.NavLinks, func(l content.NavLink) g.Node {
			return A(Class("mobile-link"), Href("/"+l.Href()), Data("scroll-to", l.Section), g.Text(l.Name))
		}),
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
