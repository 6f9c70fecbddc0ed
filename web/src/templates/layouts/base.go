package layouts

import (
	"github.com/a-h/templ"
	"github.com/nfrund/portview/internal/view"
	cmp "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// HTMXScript is the htmx build the pages load.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Base is the page shell shared by all full-page responses: document head,
// flash messages and the page content.
func Base(title string, flash view.FlashData, content cmp.Node) templ.Component {
	return view.Component(components.HTML5(components.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []cmp.Node{
			g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
			g.Script(g.Src(HTMXScript), g.Defer()),
		},
		Body: []cmp.Node{
			flashes(flash),
			content,
		},
	}))
}

func flashes(flash view.FlashData) cmp.Node {
	if flash.Empty() {
		return nil
	}
	return g.Div(
		g.ID("flash"),
		g.Role("status"),
		cmp.Map(flash.Success, func(msg string) cmp.Node {
			return g.P(g.Class("flash flash-success"), cmp.Text(msg))
		}),
	)
}
