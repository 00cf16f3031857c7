package components

import (
	"html/template"
	"strconv"

	"github.com/nfrund/actorkit-site/internal/tabs"
	"github.com/nfrund/actorkit-site/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Tab swaps use outerHTML on the panel and never push a URL, so a reload
// always starts from the first entry again. Requests are synced on the
// tablist so a newer click aborts one still in flight.
const tabSync = "closest [role=tablist]:replace"

func tabButton(panelID, fragmentURL string, active bool, children ...g.Node) g.Node {
	class := "tab"
	if active {
		class += " tab-active"
	}
	return Button(
		Type("button"),
		Class(class),
		g.Attr("role", "tab"),
		g.Attr("aria-selected", strconv.FormatBool(active)),
		hx.Get(fragmentURL),
		hx.Target("#"+panelID),
		hx.Swap("outerHTML"),
		hx.Sync(tabSync),
		g.Group(children),
	)
}

// codeBlock renders already highlighted source.
func codeBlock(id string, entry tabs.Entry, code template.HTML) g.Node {
	return Pre(Class("code-block"),
		Code(ID(id), Class("language-"+entry.Language), view.TrustedHTML(code)),
	)
}

// embedFrame renders an entry that shows an external visualiser instead of code.
func embedFrame(entry tabs.Entry) g.Node {
	return Div(Class("embed"),
		H3(Class("embed-caption mono"), g.Text("// State machine visualization example")),
		g.El("iframe",
			Src(entry.Embed),
			Class("embed-frame"),
			g.Attr("title", "XState Machine Visualization"),
			g.Attr("loading", "lazy"),
			g.Attr("allow", "accelerometer; ambient-light-sensor; camera; encrypted-media; geolocation; gyroscope; hid; microphone; midi; payment; usb; vr; xr-spatial-tracking"),
			g.Attr("sandbox", "allow-forms allow-modals allow-popups allow-presentation allow-same-origin allow-scripts"),
		),
	)
}
