package normalize

import (
	"encoding/xml"
	"strings"
)

// xmlNode is a generic element tree used for defensive ADF parsing.
// Senders disagree about whether repeatable elements appear once or
// several times, and whether leaf values carry attributes, so callers go
// through the two accessor methods below instead of addressing the shape
// directly.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	CharData string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// parseXMLNode decodes the fragment strictly: a mismatched or unclosed
// tag is a parse failure, never a degraded record. Tolerance for shape
// variation lives in the accessors, not in the decoder.
func parseXMLNode(fragment string) (*xmlNode, error) {
	var root xmlNode
	if err := xml.Unmarshal([]byte(fragment), &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// first is the first-or-self accessor: it returns the first child element
// with the given local name, regardless of whether the sender emitted one
// element or several. It is applied uniformly at every nesting step and
// is nil-safe so lookups chain without intermediate checks.
func (n *xmlNode) first(name string) *xmlNode {
	if n == nil {
		return nil
	}
	for i := range n.Children {
		if strings.EqualFold(n.Children[i].XMLName.Local, name) {
			return &n.Children[i]
		}
	}
	return nil
}

// all returns every child element with the given local name, in document
// order.
func (n *xmlNode) all(name string) []*xmlNode {
	if n == nil {
		return nil
	}
	var out []*xmlNode
	for i := range n.Children {
		if strings.EqualFold(n.Children[i].XMLName.Local, name) {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// text is the text-extraction accessor: it returns the node's trimmed
// character data whether or not the element carries attributes (e.g. a
// phone number with a type attribute). Nil-safe; absent nodes read as "".
func (n *xmlNode) text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.CharData)
}

// attr returns the value of the named attribute, or "" when absent.
func (n *xmlNode) attr(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}

// childText resolves name through the first-or-self accessor and extracts
// its text in one step.
func (n *xmlNode) childText(name string) string {
	return n.first(name).text()
}
