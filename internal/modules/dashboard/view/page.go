package view

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Dashboard renders the body of the dashboard page.
func Dashboard(d Data) cmp.Node {
	return g.Div(
		g.Class("dashboard"),
		g.Aside(
			g.Class("users"),
			g.H2(cmp.Text("Users")),
			UserList(d.Users),
		),
		g.Main(
			g.Section(
				g.Class("profile"),
				g.H2(cmp.Text("Profile")),
				DetailForm(d.Selected),
			),
			g.Section(
				g.Class("portfolio"),
				g.H2(cmp.Text("Portfolio")),
				Portfolio(d.Selected),
			),
			StockPanel(d.Stock),
		),
	)
}

// Fragments renders the requested panels as htmx out-of-band swaps, each
// replacing the element with the same id on the page.
func Fragments(d Data, panels ...Panel) cmp.Group {
	oob := hx.SwapOOB("true")
	nodes := make(cmp.Group, 0, len(panels))
	for _, p := range panels {
		switch p {
		case PanelUsers:
			nodes = append(nodes, UserList(d.Users, oob))
		case PanelForm:
			nodes = append(nodes, DetailForm(d.Selected, oob))
		case PanelPortfolio:
			nodes = append(nodes, Portfolio(d.Selected, oob))
		case PanelStock:
			nodes = append(nodes, StockPanel(d.Stock, oob))
		}
	}
	return nodes
}
