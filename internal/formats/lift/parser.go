package lift

import (
	"fmt"
	"strconv"

	"github.com/lexfield/liftkit/core/errors"
	"github.com/lexfield/liftkit/core/lexicon"
	corexml "github.com/lexfield/liftkit/core/xml"
)

// parser carries the options and report of one Parse call.
type parser struct {
	opts   Options
	report *Report
}

// Parse converts a LIFT XML document into the document model. Element
// lookups match local names, so namespace-qualified and bare documents
// parse identically.
//
// Malformed XML aborts the whole parse. Schema violations on modeled
// constructs abort the parse in strict mode; in lenient mode the construct
// is skipped and recorded in the report. Elements outside the modeled
// subset never fail the parse: they are recorded in the report and, under
// StrictLossless, preserved verbatim on their owning entry, sense, or the
// document root.
func Parse(data []byte, opts Options) (*lexicon.Document, *Report, error) {
	xdoc, err := corexml.Parse(data)
	if err != nil {
		return nil, nil, errors.NewMalformedXML("", err)
	}
	root := xdoc.Root()
	if root == nil {
		return nil, nil, errors.NewMalformedXML("", fmt.Errorf("document has no root element"))
	}
	if root.Name() != "lift" {
		return nil, nil, &errors.SchemaError{
			ElemPath: "/",
			Element:  root.Name(),
			Message:  "root element must be <lift>",
		}
	}

	p := &parser{opts: opts, report: &Report{}}
	doc := &lexicon.Document{}

	counts := map[string]int{}
	for _, node := range root.Children() {
		name := node.Name()
		path := fmt.Sprintf("%s[%d]", name, counts[name])
		counts[name]++

		switch name {
		case "header":
			// First header wins; duplicates are out of the modeled shape.
			if counts[name] > 1 {
				p.unmodeled(path, name, node, &doc.Raw)
				continue
			}
			doc.Header = p.parseHeader(node)
		case "entry":
			entry, err := p.parseEntry(node, path)
			if err != nil {
				if p.opts.Lenient {
					p.skip(path, "entry", err)
					continue
				}
				return nil, nil, err
			}
			doc.Entries = append(doc.Entries, entry)
		default:
			p.unmodeled(path, name, node, &doc.Raw)
		}
	}

	p.report.Entries = len(doc.Entries)
	return doc, p.report, nil
}

func (p *parser) skip(path, element string, err error) {
	p.report.Skipped = append(p.report.Skipped, Skip{
		Path:    path,
		Element: element,
		Reason:  err.Error(),
	})
}

// unmodeled records an element outside the modeled subset. Under
// StrictLossless the element is preserved verbatim in raw.
func (p *parser) unmodeled(path, name string, node *corexml.Node, raw *[]string) {
	p.report.Unmodeled = append(p.report.Unmodeled, Unmodeled{Path: path, Element: name})
	if p.opts.Unknown == StrictLossless && raw != nil {
		*raw = append(*raw, node.OuterXML())
	}
}

func (p *parser) parseEntry(node *corexml.Node, path string) (*lexicon.Entry, error) {
	id := node.Attr("id")
	if id == "" {
		return nil, errors.NewSchema(path, "entry", "id")
	}

	e := &lexicon.Entry{
		ID:           id,
		GUID:         node.Attr("guid"),
		Order:        p.orderAttr(node, path),
		DateCreated:  node.Attr("dateCreated"),
		DateModified: node.Attr("dateModified"),
	}

	counts := map[string]int{}
	for _, child := range node.Children() {
		name := child.Name()
		childPath := fmt.Sprintf("%s/%s[%d]", path, name, counts[name])
		counts[name]++

		switch name {
		case "lexical-unit":
			e.LexicalUnit = parseMultitext(child)
		case "citation":
			e.CitationForm = parseMultitext(child)
		case "grammatical-info":
			e.GrammaticalInfo = parseGrammaticalInfo(child)
		case "pronunciation":
			e.Pronunciations = append(e.Pronunciations, p.parsePronunciation(child, childPath))
		case "variant":
			e.Variants = append(e.Variants, p.parseVariant(child, childPath))
		case "sense":
			s, err := p.parseSense(child, childPath)
			if err != nil {
				if p.opts.Lenient {
					p.skip(childPath, "sense", err)
					continue
				}
				return nil, err
			}
			e.Senses = append(e.Senses, s)
		case "note":
			e.Notes = append(e.Notes, parseNote(child))
		case "relation":
			r, err := p.parseRelation(child, childPath)
			if err != nil {
				if p.opts.Lenient {
					p.skip(childPath, "relation", err)
					continue
				}
				return nil, err
			}
			e.Relations = append(e.Relations, r)
		case "etymology":
			e.Etymologies = append(e.Etymologies, parseEtymology(child))
		case "field":
			e.Fields = append(e.Fields, parseField(child))
		case "trait":
			e.Traits = append(e.Traits, parseTrait(child))
		default:
			p.unmodeled(childPath, name, child, &e.Raw)
		}
	}

	return e, nil
}

func (p *parser) parseSense(node *corexml.Node, path string) (*lexicon.Sense, error) {
	// A sense id may legitimately be absent; it is kept absent rather
	// than synthesized.
	s := &lexicon.Sense{
		ID:    node.Attr("id"),
		Order: p.orderAttr(node, path),
	}

	counts := map[string]int{}
	for _, child := range node.Children() {
		name := child.Name()
		childPath := fmt.Sprintf("%s/%s[%d]", path, name, counts[name])
		counts[name]++

		switch name {
		case "grammatical-info":
			s.GrammaticalInfo = parseGrammaticalInfo(child)
		case "gloss":
			s.Gloss.Set(child.Attr("lang"), textOf(child))
		case "definition":
			s.Definition = parseMultitext(child)
		case "relation":
			r, err := p.parseRelation(child, childPath)
			if err != nil {
				if p.opts.Lenient {
					p.skip(childPath, "relation", err)
					continue
				}
				return nil, err
			}
			s.Relations = append(s.Relations, r)
		case "example":
			s.Examples = append(s.Examples, parseExample(child))
		case "field":
			s.Fields = append(s.Fields, parseField(child))
		case "trait":
			s.Traits = append(s.Traits, parseTrait(child))
		case "note":
			s.Notes = append(s.Notes, parseNote(child))
		case "subsense":
			sub, err := p.parseSense(child, childPath)
			if err != nil {
				if p.opts.Lenient {
					p.skip(childPath, "subsense", err)
					continue
				}
				return nil, err
			}
			s.Subsenses = append(s.Subsenses, sub)
		default:
			p.unmodeled(childPath, name, child, &s.Raw)
		}
	}

	return s, nil
}

// parseVariant handles the inline allomorph shape. Trait children that are
// direct children of the variant attach to the variant itself; traits under
// a nested grammatical-info belong to that grammatical-info and must never
// be flattened into the variant's set.
func (p *parser) parseVariant(node *corexml.Node, path string) lexicon.Variant {
	v := lexicon.Variant{Form: parseMultitext(node)}
	counts := map[string]int{}
	for _, child := range node.Children() {
		name := child.Name()
		childPath := fmt.Sprintf("%s/%s[%d]", path, name, counts[name])
		counts[name]++

		switch name {
		case "form":
			// collected by parseMultitext above
		case "trait":
			v.Traits = append(v.Traits, parseTrait(child))
		case "field":
			v.Fields = append(v.Fields, parseField(child))
		default:
			p.unmodeled(childPath, name, child, nil)
		}
	}
	return v
}

func (p *parser) parsePronunciation(node *corexml.Node, path string) lexicon.Pronunciation {
	pr := lexicon.Pronunciation{Form: parseMultitext(node)}
	counts := map[string]int{}
	for _, child := range node.Children() {
		name := child.Name()
		childPath := fmt.Sprintf("%s/%s[%d]", path, name, counts[name])
		counts[name]++

		switch name {
		case "form":
			// collected by parseMultitext above
		case "media":
			m := lexicon.Media{Href: child.Attr("href")}
			if label := child.Child("label"); label != nil {
				m.Label = parseMultitext(label)
			}
			pr.Media = append(pr.Media, m)
		case "field":
			pr.Fields = append(pr.Fields, parseField(child))
		case "trait":
			pr.Traits = append(pr.Traits, parseTrait(child))
		default:
			p.unmodeled(childPath, name, child, nil)
		}
	}
	return pr
}

// parseRelation attaches trait children to the relation regardless of its
// type value; private underscore-prefixed types get no special casing.
func (p *parser) parseRelation(node *corexml.Node, path string) (lexicon.Relation, error) {
	r := lexicon.Relation{
		Type:  node.Attr("type"),
		Ref:   node.Attr("ref"),
		Order: p.orderAttr(node, path),
	}
	if r.Type == "" {
		return r, errors.NewSchema(path, "relation", "type")
	}
	if r.Ref == "" {
		return r, errors.NewSchema(path, "relation", "ref")
	}
	for _, child := range node.Children() {
		switch child.Name() {
		case "trait":
			r.Traits = append(r.Traits, parseTrait(child))
		case "field":
			r.Fields = append(r.Fields, parseField(child))
		}
	}
	return r, nil
}

func parseExample(node *corexml.Node) lexicon.Example {
	ex := lexicon.Example{
		Source: node.Attr("source"),
		Form:   parseMultitext(node),
	}
	for _, child := range node.Children() {
		switch child.Name() {
		case "translation":
			ex.Translations = append(ex.Translations, lexicon.Translation{
				Type:    child.Attr("type"),
				Content: parseMultitext(child),
			})
		case "field":
			ex.Fields = append(ex.Fields, parseField(child))
		case "trait":
			ex.Traits = append(ex.Traits, parseTrait(child))
		}
	}
	return ex
}

func parseEtymology(node *corexml.Node) lexicon.Etymology {
	et := lexicon.Etymology{
		Type:   node.Attr("type"),
		Source: node.Attr("source"),
		Form:   parseMultitext(node),
	}
	for _, child := range node.Children() {
		switch child.Name() {
		case "gloss":
			et.Gloss.Set(child.Attr("lang"), textOf(child))
		case "field":
			et.Fields = append(et.Fields, parseField(child))
		}
	}
	return et
}

func parseField(node *corexml.Node) lexicon.Field {
	f := lexicon.Field{
		Type:    fieldTag(node),
		Content: parseMultitext(node),
	}
	for _, child := range node.ChildrenNamed("trait") {
		f.Traits = append(f.Traits, parseTrait(child))
	}
	return f
}

func parseNote(node *corexml.Node) lexicon.Note {
	return lexicon.Note{
		Type:    node.Attr("type"),
		Content: parseMultitext(node),
	}
}

func parseTrait(node *corexml.Node) lexicon.Trait {
	return lexicon.Trait{
		Name:  node.Attr("name"),
		Value: node.Attr("value"),
	}
}

func parseGrammaticalInfo(node *corexml.Node) *lexicon.GrammaticalInfo {
	gi := &lexicon.GrammaticalInfo{Value: node.Attr("value")}
	for _, child := range node.ChildrenNamed("trait") {
		gi.Traits = append(gi.Traits, parseTrait(child))
	}
	return gi
}

// parseMultitext flattens form children into a Multitext. A later form with
// a duplicate lang overwrites the earlier text (last-wins).
func parseMultitext(node *corexml.Node) lexicon.Multitext {
	var mt lexicon.Multitext
	for _, form := range node.ChildrenNamed("form") {
		mt.Set(form.Attr("lang"), textOf(form))
	}
	return mt
}

// textOf returns the content of the text child, falling back to the
// element's own text for producers that omit the text wrapper.
func textOf(node *corexml.Node) string {
	if t := node.Child("text"); t != nil {
		return t.Text()
	}
	return node.Text()
}

// fieldTag returns the field's type tag. Entry-level fields use the type
// attribute; some producers write tag instead.
func fieldTag(node *corexml.Node) string {
	if t := node.Attr("type"); t != "" {
		return t
	}
	return node.Attr("tag")
}

// orderAttr parses the optional order attribute. A non-integer value is
// dropped, but the drop is recorded so it never disappears silently.
func (p *parser) orderAttr(node *corexml.Node, path string) *int {
	if !node.HasAttr("order") {
		return nil
	}
	v, err := strconv.Atoi(node.Attr("order"))
	if err != nil {
		p.skip(path, "order", fmt.Errorf("non-integer order attribute %q", node.Attr("order")))
		return nil
	}
	return &v
}
