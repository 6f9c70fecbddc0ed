package view

import (
	"github.com/nfrund/portview/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// StockPanel renders the details of the displayed stock, or an empty panel.
func StockPanel(stock *domain.Stock, attrs ...cmp.Node) cmp.Node {
	var s domain.Stock
	if stock != nil {
		s = *stock
	}

	return g.Section(
		g.ID("stock-panel"),
		g.Class("stock-panel"),
		cmp.Group(attrs),
		cmp.If(stock != nil, g.Img(g.ID("logo"), g.Src(s.LogoURL()), g.Alt(s.Name+" logo"))),
		cmp.If(stock == nil, g.Img(g.ID("logo"), g.Alt(""))),
		g.H3(g.ID("stockName"), cmp.Text(s.Name)),
		g.Dl(
			g.Dt(cmp.Text("Sector")),
			g.Dd(g.ID("stockSector"), cmp.Text(s.Sector)),
			g.Dt(cmp.Text("Sub-industry")),
			g.Dd(g.ID("stockIndustry"), cmp.Text(s.SubIndustry)),
			g.Dt(cmp.Text("Address")),
			g.Dd(g.ID("stockAddress"), cmp.Text(s.Address)),
		),
	)
}
