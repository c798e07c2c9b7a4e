package sysdef

import (
	"strings"

	"github.com/beevik/etree"
)

const (
	tagDefaultValue = "DefaultValue"

	attrRowDim    = "RowDim"
	attrColDim    = "ColDim"
	attrUnits     = "Units"
	attrBitFields = "BitFields"

	// ValueTableProperty names the dictionary property that maps enum values to labels.
	ValueTableProperty = "Value Table"

	// UnitsDouble is the default unit label of a scalar channel.
	UnitsDouble = "Double"
	// UnitsEnum marks a channel whose value is interpreted through its value table.
	UnitsEnum = "Enum"
)

// ChannelSpec describes a scalar channel to create.
type ChannelSpec struct {
	Name         string
	Units        string // UnitsDouble when empty
	Description  string
	DefaultValue string
	// ValueTable is written in slice order, and the same order is used for the
	// "<value>: <key>" lines appended to the description.
	ValueTable []Entry
}

// FullDescription returns Description followed by one "\n<value>: <key>" line
// per value-table entry, in declaration order.
func (c ChannelSpec) FullDescription() string {
	var b strings.Builder
	b.WriteString(c.Description)
	for _, e := range c.ValueTable {
		b.WriteString("\n")
		b.WriteString(e.Value)
		b.WriteString(": ")
		b.WriteString(e.Key)
	}
	return b.String()
}

// Channel is a view onto one <Channel> leaf element.
type Channel struct {
	el *etree.Element
}

// AddChannel appends a 1x1 channel built from spec.
func (s *Section) AddChannel(spec ChannelSpec) *Channel {
	units := spec.Units
	if units == "" {
		units = UnitsDouble
	}

	el := s.el.CreateElement(tagChannel)
	el.CreateAttr(attrName, spec.Name)
	el.CreateAttr(attrTypeGUID, KindChannel.GUID())
	el.CreateAttr(attrRowDim, "1")
	el.CreateAttr(attrColDim, "1")
	el.CreateAttr(attrUnits, units)
	el.CreateAttr(attrBitFields, "1")

	el.CreateElement(tagDescription).SetText(spec.FullDescription())
	el.CreateElement(tagProperties)
	if len(spec.ValueTable) > 0 {
		addDictionaryProperty(el, ValueTableProperty, spec.ValueTable)
	}
	el.CreateElement(tagErrors)
	el.CreateElement(tagDefaultValue).CreateElement(tagElem).SetText(spec.DefaultValue)

	return &Channel{el: el}
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.el.SelectAttrValue(attrName, "")
}

// Kind resolves the channel's TypeGUID.
func (c *Channel) Kind() Kind {
	return KindOf(c.el.SelectAttrValue(attrTypeGUID, ""))
}

// Units returns the channel's unit label.
func (c *Channel) Units() string {
	return c.el.SelectAttrValue(attrUnits, "")
}

// Description returns the channel's description text.
func (c *Channel) Description() string {
	if d := c.el.SelectElement(tagDescription); d != nil {
		return d.Text()
	}
	return ""
}

// DefaultValue returns the scalar stored in <DefaultValue><Elem>.
func (c *Channel) DefaultValue() string {
	dv := c.el.SelectElement(tagDefaultValue)
	if dv == nil {
		return ""
	}
	if elem := dv.SelectElement(tagElem); elem != nil {
		return elem.Text()
	}
	return ""
}

// ValueTable returns the channel's value table, or nil.
func (c *Channel) ValueTable() []Entry {
	if p := findProperty(c.el, ValueTableProperty); p != nil {
		return p.Dictionary()
	}
	return nil
}
