package el

import "github.com/vango-dev/arbor/pkg/element"

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// CustomElement builds an element with an arbitrary tag.
func CustomElement(tag string, args ...any) *element.Builder {
	return build(tag, args)
}

func Html(args ...any) *element.Builder {
	return build("html", args)
}
func Head(args ...any) *element.Builder {
	return build("head", args)
}
func Body(args ...any) *element.Builder {
	return build("body", args)
}
func Title(args ...any) *element.Builder {
	return build("title", args)
}
func Meta(args ...any) *element.Builder {
	return build("meta", args)
}
func LinkEl(args ...any) *element.Builder {
	return build("link", args)
}
func Base(args ...any) *element.Builder {
	return build("base", args)
}
func Header(args ...any) *element.Builder {
	return build("header", args)
}
func Footer(args ...any) *element.Builder {
	return build("footer", args)
}
func Main(args ...any) *element.Builder {
	return build("main", args)
}
func Nav(args ...any) *element.Builder {
	return build("nav", args)
}
func Section(args ...any) *element.Builder {
	return build("section", args)
}
func Article(args ...any) *element.Builder {
	return build("article", args)
}
func Aside(args ...any) *element.Builder {
	return build("aside", args)
}
func Address(args ...any) *element.Builder {
	return build("address", args)
}
func H1(args ...any) *element.Builder {
	return build("h1", args)
}
func H2(args ...any) *element.Builder {
	return build("h2", args)
}
func H3(args ...any) *element.Builder {
	return build("h3", args)
}
func H4(args ...any) *element.Builder {
	return build("h4", args)
}
func H5(args ...any) *element.Builder {
	return build("h5", args)
}
func H6(args ...any) *element.Builder {
	return build("h6", args)
}
func Hgroup(args ...any) *element.Builder {
	return build("hgroup", args)
}
func Div(args ...any) *element.Builder {
	return build("div", args)
}
func P(args ...any) *element.Builder {
	return build("p", args)
}
func Span(args ...any) *element.Builder {
	return build("span", args)
}
func Pre(args ...any) *element.Builder {
	return build("pre", args)
}
func Blockquote(args ...any) *element.Builder {
	return build("blockquote", args)
}
func Ul(args ...any) *element.Builder {
	return build("ul", args)
}
func Ol(args ...any) *element.Builder {
	return build("ol", args)
}
func Li(args ...any) *element.Builder {
	return build("li", args)
}
func Dl(args ...any) *element.Builder {
	return build("dl", args)
}
func Dt(args ...any) *element.Builder {
	return build("dt", args)
}
func Dd(args ...any) *element.Builder {
	return build("dd", args)
}
func Hr(args ...any) *element.Builder {
	return build("hr", args)
}
func Figure(args ...any) *element.Builder {
	return build("figure", args)
}
func Figcaption(args ...any) *element.Builder {
	return build("figcaption", args)
}
func A(args ...any) *element.Builder {
	return build("a", args)
}
func Strong(args ...any) *element.Builder {
	return build("strong", args)
}
func Em(args ...any) *element.Builder {
	return build("em", args)
}
func B(args ...any) *element.Builder {
	return build("b", args)
}
func I(args ...any) *element.Builder {
	return build("i", args)
}
func U(args ...any) *element.Builder {
	return build("u", args)
}
func S(args ...any) *element.Builder {
	return build("s", args)
}
func Small(args ...any) *element.Builder {
	return build("small", args)
}
func Mark(args ...any) *element.Builder {
	return build("mark", args)
}
func Sub(args ...any) *element.Builder {
	return build("sub", args)
}
func Sup(args ...any) *element.Builder {
	return build("sup", args)
}
func Code(args ...any) *element.Builder {
	return build("code", args)
}
func Kbd(args ...any) *element.Builder {
	return build("kbd", args)
}
func Samp(args ...any) *element.Builder {
	return build("samp", args)
}
func Var(args ...any) *element.Builder {
	return build("var", args)
}
func Abbr(args ...any) *element.Builder {
	return build("abbr", args)
}
func Time_(args ...any) *element.Builder {
	return build("time", args)
}
func Cite(args ...any) *element.Builder {
	return build("cite", args)
}
func Q(args ...any) *element.Builder {
	return build("q", args)
}
func Dfn(args ...any) *element.Builder {
	return build("dfn", args)
}
func Ruby(args ...any) *element.Builder {
	return build("ruby", args)
}
func Rt(args ...any) *element.Builder {
	return build("rt", args)
}
func Rp(args ...any) *element.Builder {
	return build("rp", args)
}
func Bdi(args ...any) *element.Builder {
	return build("bdi", args)
}
func Bdo(args ...any) *element.Builder {
	return build("bdo", args)
}
func DataElement(args ...any) *element.Builder {
	return build("data", args)
}
func Br(args ...any) *element.Builder {
	return build("br", args)
}
func Wbr(args ...any) *element.Builder {
	return build("wbr", args)
}
func Form(args ...any) *element.Builder {
	return build("form", args)
}
func Input(args ...any) *element.Builder {
	return build("input", args)
}
func Textarea(args ...any) *element.Builder {
	return build("textarea", args)
}
func Select(args ...any) *element.Builder {
	return build("select", args)
}
func Option(args ...any) *element.Builder {
	return build("option", args)
}
func Optgroup(args ...any) *element.Builder {
	return build("optgroup", args)
}
func Button(args ...any) *element.Builder {
	return build("button", args)
}
func Label(args ...any) *element.Builder {
	return build("label", args)
}
func Fieldset(args ...any) *element.Builder {
	return build("fieldset", args)
}
func Legend(args ...any) *element.Builder {
	return build("legend", args)
}
func Datalist(args ...any) *element.Builder {
	return build("datalist", args)
}
func Output(args ...any) *element.Builder {
	return build("output", args)
}
func Progress(args ...any) *element.Builder {
	return build("progress", args)
}
func Meter(args ...any) *element.Builder {
	return build("meter", args)
}
func Table(args ...any) *element.Builder {
	return build("table", args)
}
func Thead(args ...any) *element.Builder {
	return build("thead", args)
}
func Tbody(args ...any) *element.Builder {
	return build("tbody", args)
}
func Tfoot(args ...any) *element.Builder {
	return build("tfoot", args)
}
func Tr(args ...any) *element.Builder {
	return build("tr", args)
}
func Th(args ...any) *element.Builder {
	return build("th", args)
}
func Td(args ...any) *element.Builder {
	return build("td", args)
}
func Caption(args ...any) *element.Builder {
	return build("caption", args)
}
func Colgroup(args ...any) *element.Builder {
	return build("colgroup", args)
}
func Col(args ...any) *element.Builder {
	return build("col", args)
}
func Img(args ...any) *element.Builder {
	return build("img", args)
}
func Picture(args ...any) *element.Builder {
	return build("picture", args)
}
func Source(args ...any) *element.Builder {
	return build("source", args)
}
func Video(args ...any) *element.Builder {
	return build("video", args)
}
func Audio(args ...any) *element.Builder {
	return build("audio", args)
}
func Track(args ...any) *element.Builder {
	return build("track", args)
}
func Iframe(args ...any) *element.Builder {
	return build("iframe", args)
}
func Embed(args ...any) *element.Builder {
	return build("embed", args)
}
func Object(args ...any) *element.Builder {
	return build("object", args)
}
func Param(args ...any) *element.Builder {
	return build("param", args)
}
func Canvas(args ...any) *element.Builder {
	return build("canvas", args)
}
func Svg(args ...any) *element.Builder {
	return build("svg", args)
}
func Circle(args ...any) *element.Builder {
	return build("circle", args)
}
func Ellipse(args ...any) *element.Builder {
	return build("ellipse", args)
}
func Line(args ...any) *element.Builder {
	return build("line", args)
}
func Path(args ...any) *element.Builder {
	return build("path", args)
}
func Polygon(args ...any) *element.Builder {
	return build("polygon", args)
}
func Polyline(args ...any) *element.Builder {
	return build("polyline", args)
}
func Rect(args ...any) *element.Builder {
	return build("rect", args)
}
func G(args ...any) *element.Builder {
	return build("g", args)
}
func Defs(args ...any) *element.Builder {
	return build("defs", args)
}
func Use(args ...any) *element.Builder {
	return build("use", args)
}
func Math(args ...any) *element.Builder {
	return build("math", args)
}
func Map_(args ...any) *element.Builder {
	return build("map", args)
}
func Area(args ...any) *element.Builder {
	return build("area", args)
}
func Details(args ...any) *element.Builder {
	return build("details", args)
}
func Summary(args ...any) *element.Builder {
	return build("summary", args)
}
func Dialog(args ...any) *element.Builder {
	return build("dialog", args)
}
func Menu(args ...any) *element.Builder {
	return build("menu", args)
}
func Script(args ...any) *element.Builder {
	return build("script", args)
}
func Noscript(args ...any) *element.Builder {
	return build("noscript", args)
}
func Template(args ...any) *element.Builder {
	return build("template", args)
}
func Slot(args ...any) *element.Builder {
	return build("slot", args)
}
func Style(args ...any) *element.Builder {
	return build("style", args)
}
