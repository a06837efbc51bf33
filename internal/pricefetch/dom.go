package pricefetch

import (
	"strings"

	"golang.org/x/net/html"
)

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// findByID returns the first element with the given id, depth-first.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attrValue(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// findByClass returns the first element carrying the given class.
func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// findNestedClass returns the first element with inner class that sits
// anywhere below an element with outer class.
func findNestedClass(n *html.Node, outer, inner string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, outer) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := findByClass(c, inner); found != nil {
				return found
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNestedClass(c, outer, inner); found != nil {
			return found
		}
	}
	return nil
}

// findTextNode returns the first text node containing the substring.
func findTextNode(n *html.Node, substr string) *html.Node {
	if n.Type == html.TextNode && strings.Contains(n.Data, substr) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTextNode(c, substr); found != nil {
			return found
		}
	}
	return nil
}

// textContent flattens all text below the node.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return strings.TrimSpace(sb.String())
}
