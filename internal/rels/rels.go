// Package rels parses OOXML relationship XML files (.rels).
//
// It exists to eliminate duplicated parseRelsXML / xmlRelationships code from
// workbook/ and worksheet/, which cannot share the code directly due to the
// import graph.
package rels

import (
	"encoding/xml"
	"fmt"
)

// Relationship is one entry in a .rels XML document.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
	// Type is the relationship type URI (e.g.
	// "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet").
	// It is what lets a caller classify a BrtBundleSh entry as a worksheet vs.
	// a macrosheet without having to guess from the file name.
	Type string `xml:"Type,attr"`
}

// relationships is the root element of a .rels XML document.
type relationships struct {
	Relationships []Relationship `xml:"Relationship"`
}

// Parse parses the raw bytes of a .rels XML file and returns the full
// relationship records, keyed by relationship ID.
func Parse(data []byte) (map[string]Relationship, error) {
	var r relationships
	if err := xml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse rels XML: %w", err)
	}
	m := make(map[string]Relationship, len(r.Relationships))
	for _, rel := range r.Relationships {
		m[rel.ID] = rel
	}
	return m, nil
}

// ParseRelsXML parses the raw bytes of a .rels XML file and returns a map of
// relationship ID → target string, for callers that only need the target.
func ParseRelsXML(data []byte) (map[string]string, error) {
	full, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(full))
	for id, rel := range full {
		m[id] = rel.Target
	}
	return m, nil
}
