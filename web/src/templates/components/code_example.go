package components

import (
	"html/template"

	"github.com/nfrund/actorkit-site/internal/showcase"
	"github.com/nfrund/actorkit-site/internal/tabs"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CodePanelID is the swap target of the code example tabs.
const CodePanelID = "code-panel"

// SnippetFragmentURL is the htmx endpoint that renders the panel for s.
func SnippetFragmentURL(s showcase.Snippet) string {
	return "/fragments/code/" + s.Slug()
}

// CodeExampleSection is the "Build Complex, Interactive Applications" section around panel.
func CodeExampleSection(panel g.Node) g.Node {
	return Section(ID("code-example"), Class("section container"),
		Div(Class("section-intro"),
			H2(g.Text("Build Complex, Interactive Applications with Ease")),
			P(Class("lead muted"), g.Text("Actor Kit provides a seamless way to build stateful applications on Cloudflare Workers")),
		),
		panel,
	)
}

// CodePanel renders the snippet tabs, the copy button and the active snippet.
func CodePanel(items []tabs.Item[showcase.Snippet], active tabs.Entry, code template.HTML) g.Node {
	return Div(ID(CodePanelID), Class("code-panel"),
		Div(Class("code-toolbar"),
			Div(Class("code-tabs"), g.Attr("role", "tablist"),
				g.Map(items, func(item tabs.Item[showcase.Snippet]) g.Node {
					return tabButton(CodePanelID, SnippetFragmentURL(item.Key), item.Active, g.Text(item.Entry.Title))
				}),
			),
			Span(Class("code-filename mono muted"), g.Text(active.Description)),
			Button(Type("button"), Class("button button-ghost copy-button"),
				g.Attr("data-copy-target", "#snippet-code"),
				Icon("copy"),
				Span(Class("copy-label"), g.Text("Copy")),
			),
		),
		codeBlock("snippet-code", active, code),
	)
}
