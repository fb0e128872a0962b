package mindmap

import (
	"strings"

	"golang.org/x/net/html"
)

// NoteText returns the topic's note body as plain text. The plain
// representation wins when present; otherwise the HTML representation is
// flattened to text. Returns "" when the topic carries no note.
func (t *Topic) NoteText() string {
	if t.Notes == nil {
		return ""
	}
	if t.Notes.Plain != nil {
		if s := strings.TrimSpace(t.Notes.Plain.Content); s != "" {
			return s
		}
	}
	if t.Notes.RealHTML != nil {
		return htmlToText(t.Notes.RealHTML.Content)
	}
	return ""
}

// htmlToText flattens an HTML fragment to plain text, one line per block
// element. Parse errors yield "" — a malformed note is dropped, not fatal.
func htmlToText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var lines []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			lines = append(lines, s)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			current.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			case "br":
				flush()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				flush()
			}
		}
	}
	walk(doc)
	flush()

	return strings.Join(lines, "\n")
}
