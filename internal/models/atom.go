package models

import (
	"strconv"
	"strings"
)

// TruthValue is the (strength, confidence) pair shown next to an atom.
type TruthValue struct {
	Strength   float64 `json:"strength"`
	Confidence float64 `json:"confidence"`
}

// String renders the pair as "[1.0, 0.9]".
func (tv TruthValue) String() string {
	return "[" + formatTV(tv.Strength) + ", " + formatTV(tv.Confidence) + "]"
}

func formatTV(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Atom is one record of an AtomSpace snapshot. Links carry the names of
// their outgoing atoms instead of a name of their own.
type Atom struct {
	Type     string     `json:"type"`
	Name     string     `json:"name,omitempty"`
	Outgoing []string   `json:"outgoing,omitempty"`
	TV       TruthValue `json:"tv"`
}

// IsNode reports whether the atom type names a node.
func (a Atom) IsNode() bool { return strings.HasSuffix(a.Type, "Node") }

// IsLink reports whether the atom type names a link.
func (a Atom) IsLink() bool { return strings.HasSuffix(a.Type, "Link") }

// Label is the display form: a quoted name for nodes, "a → b" for links.
func (a Atom) Label() string {
	if len(a.Outgoing) > 0 {
		return strings.Join(a.Outgoing, " → ")
	}
	return strconv.Quote(a.Name)
}

// AtomSummary holds counts derived from a snapshot.
type AtomSummary struct {
	Total int `json:"total"`
	Nodes int `json:"nodes"`
	Links int `json:"links"`
}

// Summarize scans the atoms and counts node and link records.
func Summarize(atoms []Atom) AtomSummary {
	s := AtomSummary{Total: len(atoms)}
	for _, a := range atoms {
		switch {
		case a.IsNode():
			s.Nodes++
		case a.IsLink():
			s.Links++
		}
	}
	return s
}
