package sysdef

import (
	"github.com/beevik/etree"
)

const (
	tagDescription = "Description"
	tagProperties  = "Properties"
	tagErrors      = "Errors"
)

// Section is a view onto one <Section> element.
type Section struct {
	el *etree.Element
}

// Element exposes the underlying element.
func (s *Section) Element() *etree.Element {
	return s.el
}

// Name returns the section's display name. Names are not unique.
func (s *Section) Name() string {
	return s.el.SelectAttrValue(attrName, "")
}

// GUID returns the raw TypeGUID attribute.
func (s *Section) GUID() string {
	return s.el.SelectAttrValue(attrTypeGUID, "")
}

// Kind resolves the section's TypeGUID through the registry.
func (s *Section) Kind() Kind {
	return KindOf(s.GUID())
}

// Sections returns all direct child sections in document order.
func (s *Section) Sections() []*Section {
	return childSections(s.el, KindUnknown, false)
}

// SectionsOf returns the direct child sections of kind k.
func (s *Section) SectionsOf(k Kind) []*Section {
	return childSections(s.el, k, true)
}

// FirstOf returns the first direct child section of kind k, or nil.
func (s *Section) FirstOf(k Kind) *Section {
	return firstSection(s.el, k)
}

// AddSection appends a new, empty section of kind k. Like every section the
// schema defines, it starts with empty Description, Properties and Errors children.
func (s *Section) AddSection(name string, k Kind) *Section {
	return newSection(s.el, name, k)
}

// Adopt moves child, with its whole subtree, to the end of s. The element is
// detached from its previous parent; it is never copied.
func (s *Section) Adopt(child *Section) {
	s.el.AddChild(child.el)
}

// Remove detaches child from s. It reports whether child was a child of s.
func (s *Section) Remove(child *Section) bool {
	if child.el.Parent() != s.el {
		return false
	}
	s.el.RemoveChild(child.el)
	return true
}

// Parent returns the enclosing section, or nil when the parent is not a section.
func (s *Section) Parent() *Section {
	p := s.el.Parent()
	if p == nil || p.Tag != tagSection {
		return nil
	}
	return &Section{el: p}
}

// Description returns the section's description text.
func (s *Section) Description() string {
	if d := s.el.SelectElement(tagDescription); d != nil {
		return d.Text()
	}
	return ""
}

// Properties returns the section's properties in document order.
func (s *Section) Properties() []*Property {
	return properties(s.el)
}

// Property returns the property called name, or nil.
func (s *Section) Property(name string) *Property {
	return findProperty(s.el, name)
}

// AddProperty appends a scalar property holding text tagged with type t.
func (s *Section) AddProperty(name string, t ValueType, text string) *Property {
	return addProperty(s.el, name, t, text)
}

// Channels returns the section's channel children.
func (s *Section) Channels() []*Channel {
	var out []*Channel
	for _, el := range s.el.SelectElements(tagChannel) {
		out = append(out, &Channel{el: el})
	}
	return out
}

func newSection(parent *etree.Element, name string, k Kind) *Section {
	el := parent.CreateElement(tagSection)
	el.CreateAttr(attrName, name)
	el.CreateAttr(attrTypeGUID, k.GUID())
	el.CreateElement(tagDescription)
	el.CreateElement(tagProperties)
	el.CreateElement(tagErrors)
	return &Section{el: el}
}
