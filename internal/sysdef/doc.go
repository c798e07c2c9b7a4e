// Package sysdef reads, edits and writes system definition documents.
//
// A system definition is an XML tree of Section elements, each identified by a
// TypeGUID that determines its semantic role. The package exposes typed views
// (Section, Property, Channel, Alias) over the underlying element tree so that
// callers never handle raw GUID literals or element paths:
//
//	doc, err := sysdef.Parse(data)
//	for _, target := range doc.Targets() {
//	    hw := target.FirstOf(sysdef.KindHardware)
//	    ...
//	}
//
// Views are cheap handles onto elements owned by the Document. Moving a view
// with Section.Adopt detaches its element from the old parent and appends it to
// the new one; nothing is copied.
package sysdef
