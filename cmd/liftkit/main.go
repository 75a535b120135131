// Command liftkit is the CLI for the LIFT lexicon toolkit. It validates,
// canonicalizes, and queries LIFT documents, checks them against their
// ranges, and maintains a derived search index.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/lexfield/liftkit/core/lexicon"
	"github.com/lexfield/liftkit/core/sqlite"
	corexml "github.com/lexfield/liftkit/core/xml"
	"github.com/lexfield/liftkit/internal/cache"
	"github.com/lexfield/liftkit/internal/filter"
	"github.com/lexfield/liftkit/internal/fileutil"
	"github.com/lexfield/liftkit/internal/formats/lift"
	"github.com/lexfield/liftkit/internal/formats/liftranges"
	"github.com/lexfield/liftkit/internal/index"
	"github.com/lexfield/liftkit/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for liftkit.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" enum:"text,json"`

	// Command groups (noun-first organization)
	Lex     LexGroup     `cmd:"" help:"Document operations (validate, roundtrip, fmt)"`
	Entries EntriesGroup `cmd:"" help:"Entry operations (list, new, assign-ids)"`
	Header  HeaderGroup  `cmd:"" help:"Header operations"`
	Ranges  RangesGroup  `cmd:"" help:"Ranges document operations"`
	Index   IndexGroup   `cmd:"" help:"Search index operations"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// LexGroup contains whole-document operations.
type LexGroup struct {
	Validate  ValidateCmd  `cmd:"" help:"Parse a document and report problems"`
	Roundtrip RoundtripCmd `cmd:"" help:"Verify parse/generate round-trip stability"`
	Fmt       FmtCmd       `cmd:"" help:"Regenerate a document in canonical form"`
	Xpath     XpathCmd     `cmd:"" help:"Run an XPath query against a document"`
}

// EntriesGroup contains entry-level operations.
type EntriesGroup struct {
	List      EntriesListCmd `cmd:"" help:"List entries, optionally filtered"`
	New       EntriesNewCmd  `cmd:"" help:"Add a new entry with a generated id"`
	AssignIDs AssignIDsCmd   `cmd:"" name:"assign-ids" help:"Fill in missing sense ids and entry guids"`
}

// HeaderGroup contains header operations.
type HeaderGroup struct {
	Show HeaderShowCmd `cmd:"" help:"Show the document header"`
}

// RangesGroup contains ranges document operations.
type RangesGroup struct {
	List  RangesListCmd  `cmd:"" help:"List ranges and their elements"`
	Check RangesCheckCmd `cmd:"" help:"Check documents against a ranges file"`
}

// IndexGroup contains search index operations.
type IndexGroup struct {
	Build  IndexBuildCmd  `cmd:"" help:"Build a search index from a document"`
	Search IndexSearchCmd `cmd:"" help:"Search an index"`
}

// parseFlags are shared by every command that parses a LIFT document.
type parseFlags struct {
	Lenient  bool `help:"Skip constructs with schema violations instead of aborting"`
	Lossless bool `help:"Preserve unmodeled elements verbatim"`
}

func (p parseFlags) options() lift.Options {
	opts := lift.Options{Lenient: p.Lenient}
	if p.Lossless {
		opts.Unknown = lift.StrictLossless
	}
	return opts
}

// loadDocument reads and parses a LIFT document, logging the outcome.
func loadDocument(path string, opts lift.Options) (*lexicon.Document, *lift.Report, error) {
	data, err := fileutil.ReadInput(path)
	if err != nil {
		return nil, nil, err
	}
	start := time.Now()
	doc, report, err := lift.Parse(data, opts)
	if err != nil {
		return nil, nil, err
	}
	logging.ParseEvent(path, report.Entries, len(report.Skipped), len(report.Unmodeled), time.Since(start))
	return doc, report, nil
}

func printReport(report *lift.Report) {
	for _, s := range report.Skipped {
		fmt.Printf("skipped %s <%s>: %s\n", s.Path, s.Element, s.Reason)
	}
	for _, u := range report.Unmodeled {
		fmt.Printf("unmodeled %s <%s>\n", u.Path, u.Element)
	}
}

// ValidateCmd parses a document and reports skips and unmodeled elements.
type ValidateCmd struct {
	parseFlags
	Path string `arg:"" help:"LIFT document" type:"existingfile"`
}

func (c *ValidateCmd) Run() error {
	_, report, err := loadDocument(c.Path, c.options())
	if err != nil {
		return err
	}
	printReport(report)
	fmt.Printf("%s: %s\n", c.Path, report.Summary())
	return nil
}

// RoundtripCmd verifies that parse -> generate -> parse is stable.
type RoundtripCmd struct {
	parseFlags
	Path string `arg:"" help:"LIFT document" type:"existingfile"`
}

func (c *RoundtripCmd) Run() error {
	opts := c.options()
	doc, _, err := loadDocument(c.Path, opts)
	if err != nil {
		return err
	}
	out, err := lift.Generate(doc, opts)
	if err != nil {
		return err
	}
	back, _, err := lift.Parse(out, opts)
	if err != nil {
		return fmt.Errorf("reparsing generated output: %w", err)
	}
	if !back.Equal(doc) {
		return fmt.Errorf("%s: round trip changed the document", c.Path)
	}

	fp, err := lift.Fingerprint(doc)
	if err != nil {
		return err
	}
	fmt.Printf("%s: round trip stable, %d entries, fingerprint %s\n", c.Path, len(doc.Entries), fp)
	return nil
}

// FmtCmd regenerates a document in canonical form. With --raw the XML is
// pretty-printed structurally instead, without going through the document
// model; that works on any well-formed XML, ranges files included.
type FmtCmd struct {
	parseFlags
	Path string `arg:"" help:"LIFT document" type:"existingfile"`
	Out  string `short:"o" help:"Output path (default stdout)"`
	Raw  bool   `help:"Pretty-print the XML as-is instead of regenerating from the model"`
}

func (c *FmtCmd) Run() error {
	var out []byte
	start := time.Now()
	if c.Raw {
		data, err := fileutil.ReadInput(c.Path)
		if err != nil {
			return err
		}
		out, err = corexml.Format(data, corexml.FormatOptions{})
		if err != nil {
			return err
		}
	} else {
		opts := c.options()
		doc, _, err := loadDocument(c.Path, opts)
		if err != nil {
			return err
		}
		out, err = lift.Generate(doc, opts)
		if err != nil {
			return err
		}
		logging.GenerateEvent(c.Path, len(doc.Entries), len(out), time.Since(start))
	}

	if c.Out == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return fileutil.WriteFileAtomic(c.Out, out, 0644)
}

// XpathCmd runs an XPath query against the raw document. Element selectors
// match local names, so the same query works on namespace-qualified and
// bare documents.
type XpathCmd struct {
	Path  string `arg:"" help:"LIFT or ranges document" type:"existingfile"`
	Expr  string `arg:"" help:"XPath expression (e.g. //entry[@id='casa_1']/sense)"`
	Inner bool   `help:"Print inner XML of each match instead of the full element"`
}

func (c *XpathCmd) Run() error {
	data, err := fileutil.ReadInput(c.Path)
	if err != nil {
		return err
	}
	xdoc, err := corexml.Parse(data)
	if err != nil {
		return err
	}
	nodes, err := xdoc.XPath(c.Expr)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if c.Inner {
			fmt.Println(n.InnerXML())
		} else {
			fmt.Println(n.OuterXML())
		}
	}
	fmt.Fprintf(os.Stderr, "%d matches\n", len(nodes))
	return nil
}

// EntriesListCmd lists entries, optionally filtered by an expression.
type EntriesListCmd struct {
	parseFlags
	Path  string `arg:"" help:"LIFT document" type:"existingfile"`
	Where string `help:"Filter expression (e.g. 'gloss ~ house and pos = Noun')"`
	JSON  bool   `help:"Emit JSON instead of text"`
}

func (c *EntriesListCmd) Run() error {
	doc, _, err := loadDocument(c.Path, c.options())
	if err != nil {
		return err
	}

	entries := doc.Entries
	if c.Where != "" {
		f, err := filter.Compile(c.Where)
		if err != nil {
			return err
		}
		entries = f.Select(doc)
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		gloss := ""
		if len(e.Senses) > 0 {
			_, gloss = e.Senses[0].Gloss.First()
		}
		fmt.Printf("%s\t%s\t%s\n", e.ID, e.Headword(), gloss)
	}
	fmt.Fprintf(os.Stderr, "%d entries\n", len(entries))
	return nil
}

// EntriesNewCmd appends a new entry with a generated id.
type EntriesNewCmd struct {
	parseFlags
	Path     string `arg:"" help:"LIFT document" type:"existingfile"`
	Headword string `arg:"" help:"Headword of the new entry"`
	Lang     string `help:"Writing system of the headword" default:"en"`
	Out      string `short:"o" help:"Output path (default: rewrite in place)"`
}

func (c *EntriesNewCmd) Run() error {
	opts := c.options()
	doc, _, err := loadDocument(c.Path, opts)
	if err != nil {
		return err
	}

	entry := &lexicon.Entry{
		ID:          lexicon.NewEntryID(c.Headword),
		LexicalUnit: lexicon.NewMultitext(c.Lang, c.Headword),
	}
	doc.Entries = append(doc.Entries, entry)

	out, err := lift.Generate(doc, opts)
	if err != nil {
		return err
	}
	dest := c.Out
	if dest == "" {
		dest = c.Path
	}
	if err := fileutil.WriteFileAtomic(dest, out, 0644); err != nil {
		return err
	}
	fmt.Printf("added %s\n", entry.ID)
	return nil
}

// AssignIDsCmd fills in missing sense ids and entry guids. Entry ids are
// never touched: an entry without one is a schema violation, not a gap to
// paper over.
type AssignIDsCmd struct {
	parseFlags
	Path string `arg:"" help:"LIFT document" type:"existingfile"`
	Out  string `short:"o" help:"Output path (default: rewrite in place)"`
}

func (c *AssignIDsCmd) Run() error {
	opts := c.options()
	doc, _, err := loadDocument(c.Path, opts)
	if err != nil {
		return err
	}

	assigned := 0
	var fill func(senses []*lexicon.Sense)
	fill = func(senses []*lexicon.Sense) {
		for _, s := range senses {
			if s.ID == "" {
				s.ID = lexicon.NewSenseID()
				assigned++
			}
			fill(s.Subsenses)
		}
	}
	for _, e := range doc.Entries {
		if e.GUID == "" {
			e.GUID = lexicon.NewGUID()
			assigned++
		}
		fill(e.Senses)
	}

	out, err := lift.Generate(doc, opts)
	if err != nil {
		return err
	}
	dest := c.Out
	if dest == "" {
		dest = c.Path
	}
	if err := fileutil.WriteFileAtomic(dest, out, 0644); err != nil {
		return err
	}
	fmt.Printf("assigned %d identifiers\n", assigned)
	return nil
}

// HeaderShowCmd prints the document header.
type HeaderShowCmd struct {
	parseFlags
	Path string `arg:"" help:"LIFT document" type:"existingfile"`
	JSON bool   `help:"Emit JSON instead of text"`
}

func (c *HeaderShowCmd) Run() error {
	doc, _, err := loadDocument(c.Path, c.options())
	if err != nil {
		return err
	}

	h := doc.Header
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(h)
	}
	if h.IsEmpty() {
		fmt.Println("no header")
		return nil
	}
	if !h.Description.IsEmpty() {
		for _, lt := range h.Description {
			fmt.Printf("description[%s]: %s\n", lt.Lang, lt.Text)
		}
	}
	if h.RangesHref != "" {
		fmt.Printf("ranges: %s\n", h.RangesHref)
	}
	for _, fd := range h.FieldDefs {
		_, desc := fd.Content.First()
		fmt.Printf("field %s: %s\n", fd.Tag, desc)
	}
	return nil
}

// RangesListCmd lists the ranges of a .lift-ranges document.
type RangesListCmd struct {
	Path  string `arg:"" help:"Ranges document" type:"existingfile"`
	Range string `help:"Show only this range, with its elements"`
}

func (c *RangesListCmd) Run() error {
	data, err := fileutil.ReadInput(c.Path)
	if err != nil {
		return err
	}
	reg, err := liftranges.Parse(data)
	if err != nil {
		return err
	}

	if c.Range != "" {
		r := reg.Range(c.Range)
		if r == nil {
			return fmt.Errorf("range %q not found in %s", c.Range, c.Path)
		}
		for _, el := range r.Elements {
			indent := ""
			if el.Parent != "" {
				indent = "  "
			}
			_, label := el.Label.First()
			fmt.Printf("%s%s\t%s\n", indent, el.ID, label)
		}
		return nil
	}

	for _, r := range reg.Ranges() {
		suffix := fmt.Sprintf("%d elements", len(r.Elements))
		if r.Href != "" {
			suffix = "-> " + r.Href
		}
		fmt.Printf("%s\t%s\n", r.ID, suffix)
	}
	return nil
}

// registryCache avoids reparsing the same ranges file for every document
// checked in one invocation.
var registryCache = cache.New[*liftranges.Registry]()

func loadRegistry(path string) (*liftranges.Registry, error) {
	return registryCache.Load(path, func() (*liftranges.Registry, error) {
		data, err := fileutil.ReadInput(path)
		if err != nil {
			return nil, err
		}
		return liftranges.Parse(data)
	})
}

// RangesCheckCmd checks documents against a ranges file. Warnings are
// advisory; the command fails only on parse errors.
type RangesCheckCmd struct {
	parseFlags
	Paths  []string `arg:"" help:"LIFT documents" type:"existingfile"`
	Ranges string   `required:"" help:"Ranges document" type:"existingfile"`
}

func (c *RangesCheckCmd) Run() error {
	total := 0
	for _, path := range c.Paths {
		reg, err := loadRegistry(c.Ranges)
		if err != nil {
			return err
		}
		doc, _, err := loadDocument(path, c.options())
		if err != nil {
			return err
		}
		warnings := reg.CheckDocument(doc)
		for _, w := range warnings {
			fmt.Printf("%s: %s\n", path, w)
		}
		total += len(warnings)
	}
	fmt.Printf("%d warnings\n", total)
	return nil
}

// IndexBuildCmd builds a search index from a document.
type IndexBuildCmd struct {
	parseFlags
	Path string `arg:"" help:"LIFT document" type:"existingfile"`
	Out  string `required:"" short:"o" help:"Index database path"`
}

func (c *IndexBuildCmd) Run() error {
	doc, _, err := loadDocument(c.Path, c.options())
	if err != nil {
		return err
	}

	ix, err := index.Create(c.Out)
	if err != nil {
		return err
	}
	defer ix.Close()

	ctx := context.Background()
	if err := ix.Build(ctx, doc, c.Path); err != nil {
		return err
	}
	logging.IndexEvent("build", c.Out, len(doc.Entries))
	fmt.Printf("indexed %d entries into %s\n", len(doc.Entries), c.Out)
	return nil
}

// IndexSearchCmd searches an index.
type IndexSearchCmd struct {
	Index string `arg:"" help:"Index database path" type:"existingfile"`
	Query string `arg:"" help:"Search text"`
}

func (c *IndexSearchCmd) Run() error {
	ix, err := index.Open(c.Index)
	if err != nil {
		return err
	}
	defer ix.Close()

	ctx := context.Background()
	hits, err := ix.Search(ctx, c.Query)
	if err != nil {
		return err
	}
	logging.IndexEvent("search", c.Index, len(hits), "query", c.Query)
	for _, h := range hits {
		fmt.Printf("%s\t%s\t%s\t%s\n", h.EntryID, h.Headword, h.POS, h.Gloss)
	}
	fmt.Fprintf(os.Stderr, "%d hits\n", len(hits))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Printf("liftkit %s (lift %s, sqlite driver %s)\n", version, lift.Version, info.DriverType)
	return nil
}

func initLogging() {
	level := logging.LevelInfo
	switch strings.ToLower(CLI.LogLevel) {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if strings.ToLower(CLI.LogFormat) == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("liftkit"),
		kong.Description("LIFT lexicon toolkit - parse, validate, and query LIFT documents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
