package view

import (
	"net/url"

	"github.com/nfrund/portview/internal/domain"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// SelectURL is the endpoint selecting the user with the given id.
func SelectURL(id domain.UserID) string {
	return "/users/" + url.PathEscape(id.String()) + "/select"
}

// UserList renders one entry per user, in collection order, labeled
// "lastname, firstname". The list is always rendered whole.
func UserList(users []domain.User, attrs ...cmp.Node) cmp.Node {
	return g.Ul(
		g.ID("user-list"),
		g.Class("user-list"),
		cmp.Group(attrs),
		cmp.Map(users, func(u domain.User) cmp.Node {
			return g.Li(
				g.Data("user-id", u.ID.String()),
				hx.Post(SelectURL(u.ID)),
				hx.Swap("none"),
				cmp.Text(u.Label()),
			)
		}),
	)
}
