// Package xmlutils provides the XML access layer used by the MX parser:
// hardened parsing, namespace discovery and XPath extraction over
// gopkg.in/xmlpath.v2. XPath steps match element local names, so the same
// expressions work on default-namespace, prefixed and unqualified documents.
package xmlutils

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// ErrDTDNotAllowed is returned for documents that carry a DOCTYPE
// declaration. Entity expansion is never performed.
var ErrDTDNotAllowed = errors.New("DOCTYPE declarations are not allowed")

// Document is a parsed XML document together with the namespaces needed to
// classify an ISO 20022 message.
type Document struct {
	Root *xmlpath.Node

	// RootName is the name of the outermost element.
	RootName xml.Name

	// DocumentNamespace is the namespace of the first element whose local
	// name is "Document", or "" when there is none.
	DocumentNamespace string
}

// ParseDocument parses content into a Document. It fails on empty input,
// malformed XML and on any DOCTYPE declaration.
func ParseDocument(content string) (*Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("empty XML document")
	}

	rootName, docNS, err := scanNamespaces(content)
	if err != nil {
		return nil, err
	}

	root, err := xmlpath.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	return &Document{Root: root, RootName: rootName, DocumentNamespace: docNS}, nil
}

// scanNamespaces walks the token stream once, rejecting DTDs before the root
// element and recording the root name and the Document element namespace.
func scanNamespaces(content string) (xml.Name, string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var root xml.Name
	seenRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return xml.Name{}, "", fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.Directive:
			if bytes.HasPrefix(bytes.ToUpper(bytes.TrimSpace(t)), []byte("DOCTYPE")) {
				return xml.Name{}, "", ErrDTDNotAllowed
			}
		case xml.StartElement:
			if !seenRoot {
				root = t.Name
				seenRoot = true
			}
			if t.Name.Local == "Document" {
				return root, t.Name.Space, nil
			}
		}
	}

	if !seenRoot {
		return xml.Name{}, "", fmt.Errorf("failed to parse XML: no root element")
	}
	return root, "", nil
}

// First returns the trimmed text of the first node matched by path under
// node, or "" when nothing matches.
func First(node *xmlpath.Node, path *xmlpath.Path) string {
	if node == nil || path == nil {
		return ""
	}
	if value, ok := path.String(node); ok {
		return CleanText(value)
	}
	return ""
}

// FirstOf returns the first non-empty result of paths, tried in order.
func FirstOf(node *xmlpath.Node, paths ...*xmlpath.Path) string {
	for _, p := range paths {
		if v := First(node, p); v != "" {
			return v
		}
	}
	return ""
}

// FirstNode returns the first node matched by path under node.
func FirstNode(node *xmlpath.Node, path *xmlpath.Path) *xmlpath.Node {
	if node == nil || path == nil {
		return nil
	}
	iter := path.Iter(node)
	if iter.Next() {
		return iter.Node()
	}
	return nil
}

// Nodes returns every node matched by path under node, in document order.
func Nodes(node *xmlpath.Node, path *xmlpath.Path) []*xmlpath.Node {
	if node == nil || path == nil {
		return nil
	}
	var nodes []*xmlpath.Node
	iter := path.Iter(node)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// Count returns how many nodes path matches under node.
func Count(node *xmlpath.Node, path *xmlpath.Path) int {
	return len(Nodes(node, path))
}

// CleanText collapses runs of whitespace, including the line breaks and
// indentation of pretty-printed documents, into single spaces.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
