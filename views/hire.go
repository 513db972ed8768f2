package views

import (
	"context"
	"slices"

	"github.com/a-h/templ"
	"github.com/estevanpithan/folio/contact"
	"github.com/estevanpithan/folio/i18n"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hire renders the contact cards and the contact form.
func Hire(ch Chrome, data HireData) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return Layout(ch,
			h.Section(h.Class("section"),
				h.Div(h.Class("container"),
					sectionHeader(ch.T("hire.title"), ch.T("hire.description")),
					g.If(ch.Site.HourlyRate > 0,
						h.P(h.Class("rate center"), g.Text(ch.T("hire.rate", i18n.Args{"rate": ch.Site.HourlyRate}))),
					),
					h.Div(h.Class("grid grid-2 hire"),
						h.Div(h.Class("contact-cards"),
							linkedInCard(ch),
							g.If(ch.Site.Email != "", emailCard(ch)),
							g.If(ch.Site.Phone != "", phoneCard(ch)),
						),
						h.Div(h.Class("card form-card"),
							h.H2(g.Text(ch.T("hire.form.title"))),
							h.P(h.Class("muted"), g.Text(ch.T("hire.form.description"))),
							contactForm(ch, data),
						),
					),
				),
			),
		)
	})
}

// ContactForm renders only the form, for enhanced submissions.
func ContactForm(ch Chrome, data HireData) templ.Component {
	return page(func(ctx context.Context) g.Node {
		return contactForm(ch, data)
	})
}

func linkedInCard(ch Chrome) g.Node {
	return h.Div(h.Class("card contact-card"),
		h.Div(h.Class("contact-card-head"),
			avatar(ch.Site, 320, "avatar-md"),
			h.Div(
				h.H3(g.Text(ch.T("hire.linkedin.title"))),
				h.P(h.Class("muted"), g.Text(ch.T("hire.linkedin.description"))),
			),
		),
		g.If(ch.Site.LinkedInURL != "",
			externalLink(ch.Site.LinkedInURL, h.Class("button button-block"), g.Text(ch.T("hire.linkedin.open")+" ↗")),
		),
	)
}

func emailCard(ch Chrome) g.Node {
	return h.Div(h.Class("card contact-card"),
		h.H3(g.Text(ch.T("hire.email.title"))),
		h.P(h.Class("muted"), g.Text(ch.T("hire.email.description"))),
		h.Div(h.Class("copy-row"),
			h.Code(g.Text(ch.Site.Email)),
			copyButton(ch.Site.Email, ch.T("hire.email.copy"), ch.T("hire.copied.email"), ch),
		),
		h.A(h.Href("mailto:"+ch.Site.Email), h.Class("button button-outline button-block"), g.Text(ch.T("hire.email.send"))),
	)
}

func phoneCard(ch Chrome) g.Node {
	return h.Div(h.Class("card contact-card"),
		h.H3(g.Text(ch.T("hire.phone.title"))),
		h.P(h.Class("muted"), g.Text(ch.T("hire.phone.description"))),
		h.Div(h.Class("copy-row"),
			h.Code(g.Text(ch.Site.Phone)),
			copyButton(ch.Site.Phone, ch.T("hire.phone.copy"), ch.T("hire.copied.phone"), ch),
		),
		h.A(h.Href("tel:"+ch.Site.Phone), h.Class("button button-outline button-block"), g.Text(ch.T("hire.phone.call"))),
	)
}

func copyButton(value, label, copied string, ch Chrome) g.Node {
	return h.Button(h.Type("button"), h.Class("copy-button"),
		g.Attr("data-copy", value),
		g.Attr("data-toast-title", ch.T("hire.copied.title")),
		g.Attr("data-toast-description", copied),
		g.Attr("aria-label", label), g.Attr("title", label),
		g.Text("⧉"),
	)
}

func contactForm(ch Chrome, data HireData) g.Node {
	v := data.Form
	missing := func(field string) bool { return slices.Contains(v.Missing, field) }
	label := ch.T("hire.form.send")
	if v.Submitting {
		label = ch.T("hire.form.sending")
	}
	return g.El("form", h.ID("contact-form"), h.Class("contact-form"), h.Method("post"), h.Action("/hire"),
		g.Attr("data-enhance", "#contact-form"),
		h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(ch.CSRF)),
		g.If(v.Notice != nil, h.Div(h.Class("notice"), g.Attr("role", "status"),
			g.Attr("data-toast-title", ch.T("hire.sent.title")),
			g.Attr("data-toast-description", ch.T("hire.sent.description")),
			h.Strong(g.Text(ch.T("hire.sent.title"))),
			h.P(g.Text(ch.T("hire.sent.description"))),
		)),
		g.If(data.Limited, h.P(h.Class("form-error"), g.Attr("role", "alert"), g.Text(ch.T("hire.limited")))),
		formField(ch, contact.FieldName, "text", v.Fields.Name, missing(contact.FieldName)),
		formField(ch, contact.FieldEmail, "email", v.Fields.Email, missing(contact.FieldEmail)),
		formField(ch, contact.FieldMessage, "", v.Fields.Message, missing(contact.FieldMessage)),
		h.Button(h.Type("submit"), h.Class("button button-block"),
			g.If(v.Submitting, h.Disabled()),
			g.Attr("data-sending", ch.T("hire.form.sending")),
			g.Text(label),
		),
	)
}

func formField(ch Chrome, name, inputType, value string, invalid bool) g.Node {
	id := "contact-" + name
	placeholder := ch.T("hire.form." + name + "_placeholder")
	var control g.Node
	if inputType == "" {
		control = h.Textarea(h.ID(id), h.Name(name), h.Required(), h.Placeholder(placeholder),
			g.Attr("rows", "6"), g.If(invalid, g.Attr("aria-invalid", "true")), g.Text(value))
	} else {
		control = h.Input(h.ID(id), h.Name(name), h.Type(inputType), h.Required(), h.Placeholder(placeholder),
			h.Value(value), g.If(invalid, g.Attr("aria-invalid", "true")))
	}
	return h.Div(h.Class("field"),
		g.El("label", g.Attr("for", id), g.Text(ch.T("hire.form."+name))),
		control,
		g.If(invalid, h.P(h.Class("field-error"), g.Text(ch.T("hire.form.required")))),
	)
}
