package sysdef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

const (
	tagVersion        = "Version"
	tagRoot           = "Root"
	tagTargetSections = "TargetSections"
	tagTarget         = "Target"
	tagSection        = "Section"
	tagChannel        = "Channel"
	tagAlias          = "Alias"

	attrName     = "Name"
	attrTypeGUID = "TypeGUID"
	attrMajor    = "Major"
	attrMinor    = "Minor"
)

// Version is the document's schema version marker.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Document is a parsed system definition. It owns every element reachable
// from its root; all views returned by its methods refer into that tree.
type Document struct {
	doc *etree.Document
}

// Parse reads a system definition from data.
// Malformed XML and documents without a root element wrap slscmigrate.ErrInvalidDocument.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", slscmigrate.ErrInvalidDocument, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", slscmigrate.ErrInvalidDocument)
	}
	return &Document{doc: doc}, nil
}

// Bytes serializes the document. A positive indent re-indents the whole tree
// with that many spaces; zero keeps the whitespace as parsed.
func (d *Document) Bytes(indent int) ([]byte, error) {
	if indent > 0 {
		d.doc.Indent(indent)
	}
	data, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}

// Root returns the document element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Version reads the <Version Major=".." Minor=".."> marker under the document element.
func (d *Document) Version() (Version, error) {
	el := childElement(d.Root(), tagVersion)
	if el == nil {
		return Version{}, fmt.Errorf("version marker not found: %w", slscmigrate.ErrStructuralMismatch)
	}

	major, err := intAttr(el, attrMajor)
	if err != nil {
		return Version{}, err
	}
	minor, err := intAttr(el, attrMinor)
	if err != nil {
		return Version{}, err
	}
	return Version{Major: major, Minor: minor}, nil
}

// Targets returns the targets listed under Root/TargetSections in document order.
func (d *Document) Targets() []*Target {
	sections := childElement(childElement(d.Root(), tagRoot), tagTargetSections)
	if sections == nil {
		return nil
	}
	var targets []*Target
	for _, el := range sections.SelectElements(tagTarget) {
		targets = append(targets, &Target{el: el})
	}
	return targets
}

// Aliases returns every alias held by an alias container anywhere in the document.
func (d *Document) Aliases() []*Alias {
	var aliases []*Alias
	walkSections(d.Root(), func(s *Section) {
		if s.Kind() != KindAliases {
			return
		}
		for _, el := range s.el.SelectElements(tagAlias) {
			aliases = append(aliases, &Alias{el: el})
		}
	})
	return aliases
}

// SectionsOf returns every section of kind k anywhere in the document, in document order.
func (d *Document) SectionsOf(k Kind) []*Section {
	var found []*Section
	walkSections(d.Root(), func(s *Section) {
		if s.Kind() == k {
			found = append(found, s)
		}
	})
	return found
}

// Target is one deployment target (for example "Controller").
type Target struct {
	el *etree.Element
}

// Name returns the target's display name.
func (t *Target) Name() string {
	return t.el.SelectAttrValue(attrName, "")
}

// Sections returns the target's top-level sections.
func (t *Target) Sections() []*Section {
	return childSections(t.el, KindUnknown, false)
}

// FirstOf returns the first top-level section of kind k, or nil.
func (t *Target) FirstOf(k Kind) *Section {
	return firstSection(t.el, k)
}

func childElement(parent *etree.Element, tag string) *etree.Element {
	if parent == nil {
		return nil
	}
	return parent.SelectElement(tag)
}

func intAttr(el *etree.Element, key string) (int, error) {
	attr := el.SelectAttr(key)
	if attr == nil {
		return 0, fmt.Errorf("<%s> has no %s attribute: %w", el.Tag, key, slscmigrate.ErrStructuralMismatch)
	}
	n, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return 0, fmt.Errorf("<%s> %s=%q is not an integer: %w", el.Tag, key, attr.Value, slscmigrate.ErrStructuralMismatch)
	}
	return n, nil
}

// childSections returns the direct Section children of parent. With filter set,
// only sections of kind k are returned.
func childSections(parent *etree.Element, k Kind, filter bool) []*Section {
	var out []*Section
	for _, el := range parent.SelectElements(tagSection) {
		s := &Section{el: el}
		if filter && s.Kind() != k {
			continue
		}
		out = append(out, s)
	}
	return out
}

func firstSection(parent *etree.Element, k Kind) *Section {
	for _, el := range parent.SelectElements(tagSection) {
		if k.Is(el.SelectAttrValue(attrTypeGUID, "")) {
			return &Section{el: el}
		}
	}
	return nil
}

// walkSections visits every Section element below root in document order.
func walkSections(root *etree.Element, fn func(*Section)) {
	if root == nil {
		return
	}
	for _, el := range root.ChildElements() {
		if el.Tag == tagSection {
			fn(&Section{el: el})
		}
		walkSections(el, fn)
	}
}
