// Package model defines the record types returned by the quadtree index.
//
// # Entries
//
// An Entry pairs a location with a caller-supplied value. Entries are
// immutable: updating the value stored at a point replaces the entry.
//
//	e := model.NewEntry(geom.Pt(13.4, 52.5), "berlin")
//	e.Point() // (13.4,52.5)
//	e.Value() // "berlin"
package model
