package view

import (
	"fmt"
	"net/url"

	"github.com/nfrund/portview/internal/domain"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// EmptyPortfolioText is shown when there are no holdings to list.
const EmptyPortfolioText = "No portfolio items available."

// ViewStockURL is the endpoint displaying the stock with the given symbol.
func ViewStockURL(symbol string) string {
	return "/stocks/" + url.PathEscape(symbol) + "/view"
}

// Portfolio renders the holdings of the given user. A nil user, an absent
// portfolio and an empty one all render the placeholder and no rows.
func Portfolio(user *domain.User, attrs ...cmp.Node) cmp.Node {
	if user == nil || !user.HasPortfolio() {
		return g.Div(
			g.ID("portfolio"),
			g.Class("portfolio-list"),
			cmp.Group(attrs),
			g.P(cmp.Text(EmptyPortfolioText)),
		)
	}

	return g.Div(
		g.ID("portfolio"),
		g.Class("portfolio-list"),
		cmp.Group(attrs),
		cmp.Map(user.Portfolio, holdingRow),
	)
}

// holdingRow carries the View action on its button only; the rest of the row
// is inert.
func holdingRow(h domain.Holding) cmp.Node {
	target := ViewStockURL(h.Symbol)
	return g.Div(
		g.Class("portfolio-row"),
		g.P(g.Class("symbol"), cmp.Text(h.Symbol)),
		g.P(g.Class("shares"), cmp.Text(fmt.Sprintf("Shares: %d", h.Owned))),
		g.Form(
			g.Class("view-form"),
			g.Method("post"),
			g.Action(target),
			g.Button(
				g.Type("submit"),
				g.Class("view-button"),
				g.Data("symbol", h.Symbol),
				hx.Post(target),
				hx.Swap("none"),
				cmp.Text("View"),
			),
		),
	)
}
