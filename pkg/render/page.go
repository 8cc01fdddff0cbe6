package render

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/arbor/pkg/dom"
)

// Page contains all data needed to render a complete HTML page.
type Page struct {
	// Body is the node whose children become the body content.
	Body *dom.Node

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS styles.
	Styles []string

	// LiveReload is the websocket path the page reconnects to for updates.
	// Empty disables the reload script.
	LiveReload string
}

// liveReloadScript replaces the body content with each message received.
const liveReloadScript = `(function(){var s=document.currentScript,p=s.getAttribute("data-path");` +
	`var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+p);` +
	`ws.onmessage=function(e){var m=document.getElementById("arbor-root");if(m){m.innerHTML=e.data;}};})();`

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return html.Render(w, r.pageNode(page))
}

func (r *Renderer) pageNode(page Page) *html.Node {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	root := element(atom.Html, html.Attribute{Key: "lang", Val: lang})
	root.AppendChild(r.headNode(page))
	root.AppendChild(r.bodyNode(page))
	return root
}

// headNode builds the document head.
func (r *Renderer) headNode(page Page) *html.Node {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(element(atom.Meta,
		html.Attribute{Key: "name", Val: "viewport"},
		html.Attribute{Key: "content", Val: "width=device-width, initial-scale=1"},
	))
	if page.Title != "" {
		title := element(atom.Title)
		title.AppendChild(&html.Node{Type: html.TextNode, Data: page.Title})
		head.AppendChild(title)
	}
	for _, href := range page.StyleSheets {
		head.AppendChild(element(atom.Link,
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: href},
		))
	}
	for _, css := range page.Styles {
		style := element(atom.Style)
		style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
		head.AppendChild(style)
	}
	return head
}

// bodyNode builds the document body. The mounted content is wrapped in a
// container the reload script can address.
func (r *Renderer) bodyNode(page Page) *html.Node {
	body := element(atom.Body)
	container := element(atom.Div, html.Attribute{Key: "id", Val: "arbor-root"})
	if page.Body != nil {
		r.appendChildren(container, page.Body)
	}
	body.AppendChild(container)

	if page.LiveReload != "" {
		script := element(atom.Script, html.Attribute{Key: "data-path", Val: page.LiveReload})
		script.AppendChild(&html.Node{Type: html.TextNode, Data: liveReloadScript})
		body.AppendChild(script)
	}
	return body
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
