// Package filter compiles small query expressions over lexicon entries.
// The language covers the fields curators actually search on:
//
//	lexeme = casa
//	gloss ~ house and pos = Noun
//	trait:morph-type = stem or has(field:cv-pattern)
//	not (id ~ _old)
//
// Keys: id, lexeme, citation, gloss, definition, pos, trait:NAME,
// field:NAME. "=" compares exactly, "~" is a case-insensitive substring
// match, has(key) tests presence. "and" binds tighter than "or".
package filter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lexfield/liftkit/core/lexicon"
)

type exprNode struct {
	Left  *andNode   `parser:"@@"`
	Right []*andNode `parser:"( 'or' @@ )*"`
}

type andNode struct {
	Left  *termNode   `parser:"@@"`
	Right []*termNode `parser:"( 'and' @@ )*"`
}

type termNode struct {
	Not   *termNode `parser:"  'not' @@"`
	Group *exprNode `parser:"| '(' @@ ')'"`
	Has   *hasNode  `parser:"| @@"`
	Pred  *predNode `parser:"| @@"`
}

type hasNode struct {
	Key string `parser:"'has' '(' @Word ')'"`
}

type predNode struct {
	Key   string `parser:"@Word"`
	Op    string `parser:"@('=' | '~')"`
	Value string `parser:"@(String | Word)"`
}

var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Word", Pattern: `[A-Za-z0-9_][-A-Za-z0-9_.:]*`},
	{Name: "Punct", Pattern: `[()=~]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var filterParser = participle.MustBuild[exprNode](
	participle.Lexer(filterLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// Filter is a compiled expression. A Filter is read-only and safe for
// concurrent use.
type Filter struct {
	src  string
	root *exprNode
}

// Compile parses an expression into a Filter.
func Compile(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty filter expression")
	}
	root, err := filterParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	if err := validateExpr(root); err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	return &Filter{src: src, root: root}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.src
}

// Match reports whether the entry satisfies the expression.
func (f *Filter) Match(e *lexicon.Entry) bool {
	return evalExpr(f.root, e)
}

// Select returns the entries of the document that satisfy the expression,
// in document order.
func (f *Filter) Select(doc *lexicon.Document) []*lexicon.Entry {
	var out []*lexicon.Entry
	for _, e := range doc.Entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

func validateExpr(n *exprNode) error {
	for _, and := range append([]*andNode{n.Left}, n.Right...) {
		for _, t := range append([]*termNode{and.Left}, and.Right...) {
			if err := validateTerm(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateTerm(t *termNode) error {
	switch {
	case t.Not != nil:
		return validateTerm(t.Not)
	case t.Group != nil:
		return validateExpr(t.Group)
	case t.Has != nil:
		return validateKey(t.Has.Key)
	case t.Pred != nil:
		return validateKey(t.Pred.Key)
	}
	return fmt.Errorf("empty term")
}

func validateKey(key string) error {
	kind, _ := splitKey(key)
	switch kind {
	case "id", "lexeme", "citation", "gloss", "definition", "pos", "trait", "field":
		return nil
	}
	return fmt.Errorf("unknown key %q", key)
}

func splitKey(key string) (kind, name string) {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}

func evalExpr(n *exprNode, e *lexicon.Entry) bool {
	if evalAnd(n.Left, e) {
		return true
	}
	for _, and := range n.Right {
		if evalAnd(and, e) {
			return true
		}
	}
	return false
}

func evalAnd(n *andNode, e *lexicon.Entry) bool {
	if !evalTerm(n.Left, e) {
		return false
	}
	for _, t := range n.Right {
		if !evalTerm(t, e) {
			return false
		}
	}
	return true
}

func evalTerm(t *termNode, e *lexicon.Entry) bool {
	switch {
	case t.Not != nil:
		return !evalTerm(t.Not, e)
	case t.Group != nil:
		return evalExpr(t.Group, e)
	case t.Has != nil:
		return len(keyValues(t.Has.Key, e)) > 0
	case t.Pred != nil:
		for _, v := range keyValues(t.Pred.Key, e) {
			if matchValue(t.Pred.Op, v, t.Pred.Value) {
				return true
			}
		}
	}
	return false
}

func matchValue(op, have, want string) bool {
	if op == "~" {
		return strings.Contains(strings.ToLower(have), strings.ToLower(want))
	}
	return have == want
}
