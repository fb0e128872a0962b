package mindmap

import (
	"encoding/json"
	"testing"
)

func TestChildren_GroupedShape(t *testing.T) {
	topic := &Topic{
		Title: "root",
		Groups: TopicGroups{
			{Name: "attached", Topics: []*Topic{{Title: "a"}, {Title: "b"}}},
			{Name: "summary", Topics: []*Topic{{Title: "c"}}},
		},
	}

	got := topic.Children()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("child[%d]: expected %q, got %q", i, w, got[i].Title)
		}
	}
}

func TestChildren_AttachedDetachedShape(t *testing.T) {
	topic := &Topic{
		Title: "root",
		ChildSet: &ChildSet{
			Attached: []*Topic{{Title: "a1"}, {Title: "a2"}},
			Detached: []*Topic{{Title: "d1"}},
		},
	}

	got := topic.Children()
	want := []string{"a1", "a2", "d1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("child[%d]: expected %q, got %q", i, w, got[i].Title)
		}
	}
}

func TestChildren_BothShapesCoexist(t *testing.T) {
	// Both layouts on one node must not raise; grouped children come first.
	topic := &Topic{
		Groups: TopicGroups{
			{Name: "g", Topics: []*Topic{{Title: "grouped"}}},
		},
		ChildSet: &ChildSet{
			Attached: []*Topic{{Title: "attached"}},
			Detached: []*Topic{{Title: "detached"}},
		},
	}

	got := topic.Children()
	want := []string{"grouped", "attached", "detached"}
	if len(got) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("child[%d]: expected %q, got %q", i, w, got[i].Title)
		}
	}
}

func TestIsLeaf(t *testing.T) {
	if !(&Topic{Title: "leaf"}).IsLeaf() {
		t.Error("expected topic without children to be a leaf")
	}
	branch := &Topic{ChildSet: &ChildSet{Attached: []*Topic{{Title: "c"}}}}
	if branch.IsLeaf() {
		t.Error("expected topic with a child not to be a leaf")
	}
	empty := &Topic{ChildSet: &ChildSet{}, Groups: TopicGroups{{Name: "g"}}}
	if !empty.IsLeaf() {
		t.Error("expected topic with empty child containers to be a leaf")
	}
}

func TestTopicGroups_OrderFollowsDocument(t *testing.T) {
	// Go maps randomize iteration; the decoder must keep JSON document order.
	raw := `{"zebra":[{"title":"z"}],"alpha":[{"title":"a"}],"mid":[{"title":"m"}]}`

	var groups TopicGroups
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantNames := []string{"zebra", "alpha", "mid"}
	if len(groups) != len(wantNames) {
		t.Fatalf("expected %d groups, got %d", len(wantNames), len(groups))
	}
	for i, w := range wantNames {
		if groups[i].Name != w {
			t.Errorf("group[%d]: expected %q, got %q", i, w, groups[i].Name)
		}
	}
}

func TestTopicGroups_NullAndInvalid(t *testing.T) {
	var groups TopicGroups
	if err := json.Unmarshal([]byte(`null`), &groups); err != nil {
		t.Fatalf("unexpected error for null: %v", err)
	}
	if groups != nil {
		t.Errorf("expected nil groups for null, got %v", groups)
	}

	if err := json.Unmarshal([]byte(`[1,2]`), &groups); err == nil {
		t.Error("expected error for non-object groups value")
	}
}

func TestTopic_UnmarshalFullShape(t *testing.T) {
	raw := `{
		"title": "root",
		"image": {"src": "xap:resources/pic.png"},
		"children": {"attached": [{"title": "child"}]},
		"notes": {"plain": {"content": "note body"}}
	}`

	var topic Topic
	if err := json.Unmarshal([]byte(raw), &topic); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Title != "root" {
		t.Errorf("expected title %q, got %q", "root", topic.Title)
	}
	if topic.ImageSrc() != "xap:resources/pic.png" {
		t.Errorf("unexpected image src %q", topic.ImageSrc())
	}
	if len(topic.Children()) != 1 || topic.Children()[0].Title != "child" {
		t.Errorf("unexpected children %v", topic.Children())
	}
	if topic.NoteText() != "note body" {
		t.Errorf("unexpected note text %q", topic.NoteText())
	}
}

func TestNoteText_PlainWinsOverHTML(t *testing.T) {
	topic := &Topic{Notes: &Notes{
		Plain:    &NoteContent{Content: "plain text"},
		RealHTML: &NoteContent{Content: "<p>html text</p>"},
	}}
	if got := topic.NoteText(); got != "plain text" {
		t.Errorf("expected plain representation, got %q", got)
	}
}

func TestNoteText_HTMLFlattened(t *testing.T) {
	topic := &Topic{Notes: &Notes{
		RealHTML: &NoteContent{Content: "<p>first</p><p>second <b>bold</b></p>"},
	}}
	want := "first\nsecond bold"
	if got := topic.NoteText(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNoteText_NoNotes(t *testing.T) {
	if got := (&Topic{}).NoteText(); got != "" {
		t.Errorf("expected empty note text, got %q", got)
	}
}
