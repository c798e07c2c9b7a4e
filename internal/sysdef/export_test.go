package sysdef

import "github.com/beevik/etree"

// Element exposes the underlying <Channel> element to external tests.
func (c *Channel) Element() *etree.Element {
	return c.el
}
