package lookup

import "github.com/benjaminschreck/docx2html/internal/xmlnode"

// Relationships is the id -> target table of one part's .rels file.
type Relationships struct {
	targets  map[string]string
	external map[string]bool
}

// ParseRelationships builds a Relationships table from a _rels/*.rels
// document's root Relationships element. A nil root yields an empty table,
// matching the rule that a part with no .rels file simply has no
// relationships rather than an error.
func ParseRelationships(root *xmlnode.Element) *Relationships {
	r := &Relationships{targets: map[string]string{}, external: map[string]bool{}}
	if root == nil {
		return r
	}
	for _, el := range root.FindChildren("Relationship") {
		id, ok := el.Attr("Id")
		if !ok {
			continue
		}
		target, _ := el.Attr("Target")
		r.targets[id] = target
		if mode, _ := el.Attr("TargetMode"); mode == "External" {
			r.external[id] = true
		}
	}
	return r
}

// FindTargetByRelationshipID returns the target URI for id and whether the
// relationship is external (TargetMode="External", e.g. a linked image or a
// hyperlink to outside the package).
func (r *Relationships) FindTargetByRelationshipID(id string) (target string, external bool, ok bool) {
	target, ok = r.targets[id]
	return target, r.external[id], ok
}
