// Package mindmap reads XMind files into a schema-agnostic topic tree.
//
// Two container generations exist. Modern files (2013+) are ZIP archives
// holding a content.json entry plus embedded resources; the legacy format
// is a ZIP holding content.xml. Both decode into the same Topic type, and
// Children hides the difference between the two child layouts.
package mindmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Topic is one node of the mind-map outline. Children may live either in
// Groups (grouped-by-name lists, keyed e.g. "attached") or in ChildSet
// (explicit attached/detached lists). Either, both, or neither may be set.
type Topic struct {
	ID       string      `json:"id,omitempty"`
	Title    string      `json:"title"`
	Image    *Image      `json:"image,omitempty"`
	Groups   TopicGroups `json:"topics,omitempty"`
	ChildSet *ChildSet   `json:"children,omitempty"`
	Notes    *Notes      `json:"notes,omitempty"`
}

// Image is an embedded picture reference. Src addresses an entry of the
// Resources mapping, with or without the alias prefix.
type Image struct {
	Src string `json:"src"`
}

// ChildSet holds children in the attached/detached layout.
type ChildSet struct {
	Attached []*Topic `json:"attached,omitempty"`
	Detached []*Topic `json:"detached,omitempty"`
}

// Notes carries the optional note body of a topic, in plain and/or HTML form.
type Notes struct {
	Plain    *NoteContent `json:"plain,omitempty"`
	RealHTML *NoteContent `json:"realHTML,omitempty"`
}

// NoteContent is one representation of a note body.
type NoteContent struct {
	Content string `json:"content"`
}

// TopicGroup is one named child list of the grouped layout.
type TopicGroup struct {
	Name   string
	Topics []*Topic
}

// TopicGroups preserves the JSON document order of the grouped layout.
// A plain map would lose it: Go map iteration is randomized, and downstream
// emission order must be deterministic.
type TopicGroups []TopicGroup

// UnmarshalJSON decodes a JSON object into ordered groups.
func (g *TopicGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode topic groups: %w", err)
	}
	if tok == nil {
		*g = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decode topic groups: expected object, got %v", tok)
	}

	var groups TopicGroups
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode topic group name: %w", err)
		}
		name, _ := keyTok.(string)

		var topics []*Topic
		if err := dec.Decode(&topics); err != nil {
			return fmt.Errorf("decode topic group %q: %w", name, err)
		}
		groups = append(groups, TopicGroup{Name: name, Topics: topics})
	}

	*g = groups
	return nil
}

// Children returns the topic's children in emission order: every grouped
// list in document order, then the attached list, then the detached list.
// Both layouts are tolerated on the same node.
func (t *Topic) Children() []*Topic {
	var out []*Topic
	for _, group := range t.Groups {
		out = append(out, group.Topics...)
	}
	if t.ChildSet != nil {
		out = append(out, t.ChildSet.Attached...)
		out = append(out, t.ChildSet.Detached...)
	}
	return out
}

// IsLeaf reports whether the topic has no children under either layout.
func (t *Topic) IsLeaf() bool {
	return len(t.Children()) == 0
}

// ImageSrc returns the topic's image reference, or "" if it has none.
func (t *Topic) ImageSrc() string {
	if t.Image == nil {
		return ""
	}
	return t.Image.Src
}
