package sysdef

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

const (
	tagProperty      = "Property"
	tagElem          = "Elem"
	tagDependentFile = "DependentFile"
	tagDependentNode = "DependentNode"
	tagRTDestination = "RTDestination"

	attrKey  = "Key"
	attrPath = "Path"
)

// ValueType is the element tag that declares how a property value is stored.
type ValueType string

const (
	ValueString     ValueType = "String"
	ValueI32        ValueType = "I32"
	ValueU32        ValueType = "U32"
	ValueDouble     ValueType = "Double"
	ValueBinary     ValueType = "BinaryString"
	ValueDictionary ValueType = "Dictionary"
)

// Entry is one key/value pair of a dictionary property. Value keeps the
// numeric text exactly as written.
type Entry struct {
	Key   string
	Value string
}

// Property is a view onto one <Property Name=".."> element.
type Property struct {
	el *etree.Element
}

// Name returns the property key.
func (p *Property) Name() string {
	return p.el.SelectAttrValue(attrName, "")
}

// Rename changes the property key in place.
func (p *Property) Rename(name string) {
	p.el.CreateAttr(attrName, name)
}

// Type returns the tag of the property's value element, or "" when it has none.
func (p *Property) Type() ValueType {
	if v := p.valueElement(); v != nil {
		return ValueType(v.Tag)
	}
	return ""
}

// Text returns the textual content of the value element of type t.
// ok is false when the property holds no value of that type.
func (p *Property) Text(t ValueType) (text string, ok bool) {
	v := p.el.SelectElement(string(t))
	if v == nil {
		return "", false
	}
	return v.Text(), true
}

// Int parses an I32 value.
func (p *Property) Int() (int, error) {
	text, ok := p.Text(ValueI32)
	if !ok {
		return 0, fmt.Errorf("property %q has no %s value: %w", p.Name(), ValueI32, slscmigrate.ErrStructuralMismatch)
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("property %q value %q is not an integer: %w", p.Name(), text, slscmigrate.ErrStructuralMismatch)
	}
	return n, nil
}

// Binary decodes a BinaryString value. The stored text is base64 and may be
// wrapped across lines.
func (p *Property) Binary() ([]byte, error) {
	text, ok := p.Text(ValueBinary)
	if !ok {
		return nil, fmt.Errorf("property %q has no %s value: %w", p.Name(), ValueBinary, slscmigrate.ErrStructuralMismatch)
	}
	compact := strings.Join(strings.Fields(text), "")
	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w: %v", p.Name(), slscmigrate.ErrMalformedBinaryProperty, err)
	}
	return data, nil
}

// Retype changes the value element's tag from one type to another, keeping
// its text unchanged.
func (p *Property) Retype(from, to ValueType) error {
	v := p.el.SelectElement(string(from))
	if v == nil {
		return fmt.Errorf("property %q has no %s value: %w", p.Name(), from, slscmigrate.ErrStructuralMismatch)
	}
	v.Tag = string(to)
	return nil
}

// Dictionary returns the entries of a Dictionary value in document order.
func (p *Property) Dictionary() []Entry {
	dict := p.el.SelectElement(string(ValueDictionary))
	if dict == nil {
		return nil
	}
	var entries []Entry
	for _, elem := range dict.SelectElements(tagElem) {
		entry := Entry{Key: elem.SelectAttrValue(attrKey, "")}
		if v := firstChildElement(elem); v != nil {
			entry.Value = v.Text()
		}
		entries = append(entries, entry)
	}
	return entries
}

// DependentFiles returns the DependentFile values attached to this property.
func (p *Property) DependentFiles() []*DependentFile {
	var out []*DependentFile
	for _, el := range p.el.SelectElements(tagDependentFile) {
		out = append(out, &DependentFile{el: el})
	}
	return out
}

func (p *Property) valueElement() *etree.Element {
	return firstChildElement(p.el)
}

// DependentFile references a file deployed alongside a section.
type DependentFile struct {
	el *etree.Element
}

// Path returns the host-side path attribute.
func (f *DependentFile) Path() string {
	return f.el.SelectAttrValue(attrPath, "")
}

// SetPath replaces the host-side path attribute.
func (f *DependentFile) SetPath(path string) {
	f.el.CreateAttr(attrPath, path)
}

// Destination returns the RTDestination text. ok is false when the element is absent.
func (f *DependentFile) Destination() (dest string, ok bool) {
	d := f.el.SelectElement(tagRTDestination)
	if d == nil {
		return "", false
	}
	return d.Text(), true
}

// SetDestination replaces the RTDestination text, creating the element if needed.
func (f *DependentFile) SetDestination(dest string) {
	d := f.el.SelectElement(tagRTDestination)
	if d == nil {
		d = f.el.CreateElement(tagRTDestination)
	}
	d.SetText(dest)
}

func properties(el *etree.Element) []*Property {
	props := el.SelectElement(tagProperties)
	if props == nil {
		return nil
	}
	var out []*Property
	for _, p := range props.SelectElements(tagProperty) {
		out = append(out, &Property{el: p})
	}
	return out
}

func findProperty(el *etree.Element, name string) *Property {
	for _, p := range properties(el) {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func propertiesElement(el *etree.Element) *etree.Element {
	props := el.SelectElement(tagProperties)
	if props == nil {
		props = el.CreateElement(tagProperties)
	}
	return props
}

func addProperty(el *etree.Element, name string, t ValueType, text string) *Property {
	prop := propertiesElement(el).CreateElement(tagProperty)
	prop.CreateAttr(attrName, name)
	prop.CreateElement(string(t)).SetText(text)
	return &Property{el: prop}
}

func addDictionaryProperty(el *etree.Element, name string, entries []Entry) *Property {
	prop := propertiesElement(el).CreateElement(tagProperty)
	prop.CreateAttr(attrName, name)
	dict := prop.CreateElement(string(ValueDictionary))
	for _, e := range entries {
		elem := dict.CreateElement(tagElem)
		elem.CreateAttr(attrKey, e.Key)
		elem.CreateElement(string(ValueDouble)).SetText(e.Value)
	}
	return &Property{el: prop}
}

func firstChildElement(el *etree.Element) *etree.Element {
	children := el.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}
