package mindmap

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
)

// legacyEntry is the data file of the pre-2013 XML container.
const legacyEntry = "content.xml"

var errNoLegacyEntry = errors.New("no content.xml entry in archive")

// Legacy XML wire shapes. Namespaces are ignored on purpose: encoding/xml
// matches unqualified tags by local name, and the legacy writers were not
// consistent about theirs.
type legacyContent struct {
	Sheets []legacySheet `xml:"sheet"`
}

type legacySheet struct {
	Title string       `xml:"title"`
	Topic *legacyTopic `xml:"topic"`
}

type legacyTopic struct {
	Title     string         `xml:"title"`
	Groups    []legacyTopics `xml:"children>topics"`
	NotePlain string         `xml:"notes>plain"`
}

type legacyTopics struct {
	Type   string        `xml:"type,attr"`
	Topics []legacyTopic `xml:"topic"`
}

// readLegacy parses the legacy format from an opened archive and returns the
// primary sheet's root topic in the attached/detached layout. Embedded images
// are not recoverable on this path, so callers get an empty resource mapping.
func readLegacy(zr *zip.Reader) (*Topic, error) {
	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == legacyEntry {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, errNoLegacyEntry
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", legacyEntry, err)
	}
	defer rc.Close()

	var content legacyContent
	if err := xml.NewDecoder(rc).Decode(&content); err != nil {
		return nil, fmt.Errorf("parse %s: %w", legacyEntry, err)
	}
	if len(content.Sheets) == 0 || content.Sheets[0].Topic == nil {
		return nil, fmt.Errorf("parse %s: no root topic", legacyEntry)
	}

	return content.Sheets[0].Topic.toTopic(), nil
}

// toTopic converts a legacy XML topic into the shared model.
func (lt *legacyTopic) toTopic() *Topic {
	t := &Topic{Title: lt.Title}

	if lt.NotePlain != "" {
		t.Notes = &Notes{Plain: &NoteContent{Content: lt.NotePlain}}
	}

	for _, group := range lt.Groups {
		if len(group.Topics) == 0 {
			continue
		}
		if t.ChildSet == nil {
			t.ChildSet = &ChildSet{}
		}
		for i := range group.Topics {
			child := group.Topics[i].toTopic()
			if group.Type == "detached" {
				t.ChildSet.Detached = append(t.ChildSet.Detached, child)
			} else {
				t.ChildSet.Attached = append(t.ChildSet.Attached, child)
			}
		}
	}

	return t
}
