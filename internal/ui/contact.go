package ui

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/kdarade/portfolio/internal/contact"
	"github.com/kdarade/portfolio/internal/content"
)

func contactSection(p Page) g.Node {
	prof := p.Profile
	return Section(
		ID(content.SectionContact), Class("contact-section"),
		Div(Class("orb orb-contact"), Aria("hidden", "true")),
		Div(
			Class("section-inner contact-grid"),
			Div(
				sectionTitle("Get In", "Touch"),
				P(Class("contact-info contact-pitch"), g.Text(prof.Pitch)),
				Div(
					Class("contact-items"),
					contactItem("mail", "Email", prof.Email),
					g.If(prof.Phone != "", contactItem("phone", "Phone", prof.Phone)),
					g.If(prof.Location != "", contactItem("map-pin", "Location", prof.Location)),
				),
				Div(Class("contact-info contact-social"), socialLinks(prof, false)),
			),
			Div(Class("contact-form"), ContactForm(p.Form, p.Target)),
		),
	)
}

func contactItem(icon, label, value string) g.Node {
	return Div(
		Class("contact-info contact-item"),
		Div(Class("contact-icon"), Icon(icon)),
		Div(
			P(Class("contact-label"), g.Text(label)),
			P(Class("contact-value"), g.Text(value)),
		),
	)
}

// ContactForm renders the form for snap. While sending, the submit button
// is disabled so the visitor cannot start a second submission.
func ContactForm(snap contact.Snapshot, target FormEndpoints) g.Node {
	v := snap.Values
	sending := snap.Sending()

	label := "Send Message"
	if sending {
		label = "Sending..."
	}

	return Form(
		ID("contact-form"),
		Class("form"),
		Method("post"),
		Action(target.Action),
		Data("endpoint", target.Endpoint),
		Data("status", string(snap.Status)),
		Div(
			Class("field"),
			Label(For("name"), g.Text("Name")),
			Input(ID("name"), Name(string(contact.FieldName)), Type("text"),
				Placeholder("Your name"), Value(v.Name), Required()),
		),
		Div(
			Class("field"),
			honeypot(),
			Label(For("email"), g.Text("Email")),
			Input(ID("email"), Name(string(contact.FieldEmail)), Type("email"),
				Placeholder("your@email.com"), Value(v.Email), Required()),
		),
		Div(
			Class("field"),
			Label(For("message"), g.Text("Message")),
			Textarea(ID("message"), Name(string(contact.FieldMessage)), Rows("4"),
				Placeholder("Your message..."), Required(), g.Text(v.Message)),
		),
		Button(
			Type("submit"),
			Class("btn btn-primary btn-block"),
			g.If(sending, Disabled()),
			Span(Class("submit-label"), g.Text(label)),
			Icon("send", "icon-trailing"),
		),
		statusMessage(snap.Status),
	)
}

// honeypot is invisible and unreachable by keyboard; only bots fill it in.
func honeypot() g.Node {
	return g.Group{
		Label(For(string(contact.FieldHoneypot)), g.Attr("style", "display:none"), g.Text("Website")),
		Input(
			ID(string(contact.FieldHoneypot)), Name(string(contact.FieldHoneypot)), Type("text"),
			g.Attr("style", "display:none"), TabIndex("-1"), AutoComplete("off"),
		),
	}
}

// statusMessage is always present so the page script can fill it in; it
// is a live region so screen readers announce the outcome.
func statusMessage(s contact.Status) g.Node {
	return P(
		ID("form-status"),
		c.Classes{
			"form-status":  true,
			"form-success": s == contact.StatusSuccess,
			"form-error":   s == contact.StatusError,
		},
		Role("status"),
		Aria("live", "polite"),
		g.Text(s.Message()),
	)
}
