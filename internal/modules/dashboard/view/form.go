package view

import (
	"github.com/nfrund/portview/internal/domain"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

const (
	saveURL   = "/users/save"
	deleteURL = "/users/delete"
)

// DetailForm renders the profile form of the given user, or an empty form
// when user is nil. The id travels in a hidden field.
func DetailForm(user *domain.User, attrs ...cmp.Node) cmp.Node {
	var id string
	var p domain.Profile
	if user != nil {
		id, p = user.ID.String(), user.Profile
	}

	return g.Form(
		g.ID("detail-form"),
		g.Class("detail-form"),
		g.Method("post"),
		g.Action(saveURL),
		hx.Post(saveURL),
		hx.Swap("none"),
		cmp.Group(attrs),
		g.Input(g.Type("hidden"), g.ID("userID"), g.Name("id"), g.Value(id)),
		field("firstname", "First name", p.Firstname),
		field("lastname", "Last name", p.Lastname),
		field("address", "Address", p.Address),
		field("city", "City", p.City),
		field("email", "Email", p.Email),
		g.Div(
			g.Class("form-actions"),
			g.Button(g.Type("submit"), g.ID("btnSave"), cmp.Text("Save")),
			g.Button(
				g.Type("submit"),
				g.ID("btnDelete"),
				cmp.Attr("formaction", deleteURL),
				hx.Post(deleteURL),
				hx.Swap("none"),
				cmp.Text("Delete"),
			),
		),
	)
}

func field(name, label, value string) cmp.Node {
	return g.Div(
		g.Class("form-field"),
		g.Label(g.For(name), cmp.Text(label)),
		g.Input(g.Type("text"), g.ID(name), g.Name(name), g.Value(value)),
	)
}
