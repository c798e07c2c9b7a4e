package sysdef

import "github.com/beevik/etree"

// Alias is a named reference to another node of the document.
type Alias struct {
	el *etree.Element
}

// Name returns the alias name.
func (a *Alias) Name() string {
	return a.el.SelectAttrValue(attrName, "")
}

// Path returns the DependentNode path the alias points at. ok is false when the
// alias has no DependentNode.
func (a *Alias) Path() (path string, ok bool) {
	node := a.dependentNode()
	if node == nil {
		return "", false
	}
	return node.SelectAttrValue(attrPath, ""), true
}

// SetPath replaces the DependentNode path. It reports false when the alias has
// no DependentNode to update.
func (a *Alias) SetPath(path string) bool {
	node := a.dependentNode()
	if node == nil {
		return false
	}
	node.CreateAttr(attrPath, path)
	return true
}

func (a *Alias) dependentNode() *etree.Element {
	for _, p := range properties(a.el) {
		if node := p.el.SelectElement(tagDependentNode); node != nil {
			return node
		}
	}
	return nil
}
