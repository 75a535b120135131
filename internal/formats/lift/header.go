package lift

import (
	"fmt"

	"github.com/lexfield/liftkit/core/lexicon"
	corexml "github.com/lexfield/liftkit/core/xml"
)

// parseHeader reads the optional <header> element: description, ranges
// references, and field definitions. Header parsing never affects entry
// parsing; a missing header leaves the zero-value Header.
func (p *parser) parseHeader(node *corexml.Node) lexicon.Header {
	h := lexicon.Header{}

	counts := map[string]int{}
	for _, child := range node.Children() {
		name := child.Name()
		childPath := fmt.Sprintf("header/%s[%d]", name, counts[name])
		counts[name]++

		switch name {
		case "description":
			h.Description = parseMultitext(child)
		case "ranges":
			for _, rg := range child.ChildrenNamed("range") {
				if href := rg.Attr("href"); href != "" && h.RangesHref == "" {
					h.RangesHref = href
				}
			}
		case "fields":
			for _, fd := range child.ChildrenNamed("field") {
				tag := fd.Attr("tag")
				if tag == "" {
					// entry-level fields use type; some producers
					// write header definitions the same way
					tag = fd.Attr("type")
				}
				h.FieldDefs = append(h.FieldDefs, lexicon.FieldDef{
					Tag:     tag,
					Content: parseMultitext(fd),
				})
			}
		default:
			p.unmodeled(childPath, name, child, nil)
		}
	}

	return h
}

// header writes the <header> element. The caller skips it entirely when the
// header is empty.
func (g *gen) header(depth int, h lexicon.Header) {
	g.line(depth, "<header>")
	g.wrapped(depth+1, "description", "", h.Description)
	if h.RangesHref != "" {
		g.line(depth+1, "<ranges>")
		g.line(depth+2, `<range id="lift-ranges"`+attr("href", h.RangesHref)+"/>")
		g.line(depth+1, "</ranges>")
	}
	if len(h.FieldDefs) > 0 {
		g.line(depth+1, "<fields>")
		for _, fd := range h.FieldDefs {
			g.wrapped(depth+2, "field", attr("tag", fd.Tag), fd.Content)
		}
		g.line(depth+1, "</fields>")
	}
	g.line(depth, "</header>")
}
