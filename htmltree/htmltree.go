/*
Package htmltree exports binary search trees as nested HTML lists.

A tree is rendered as an unordered list of class "bst", holding the root's
list item. Every list item starts with the text of its value. List items of
inner nodes contain a nested list with exactly two items, one for the left
and one for the right child. An absent child is represented by an empty list
item of class "nil":

	<ul class="bst"><li>4<ul><li>1<ul><li class="nil"></li><li>3</li></ul></li>…

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package htmltree

import (
	"cmp"
	"fmt"
	"io"

	"github.com/npillmayer/bst"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'bst'.
func tracer() tracing.Trace {
	return tracing.Select("bst")
}

// ErrNoTree is returned by Labels if a document does not contain a tree list.
const ErrNoTree bst.TreeError = "no tree list found in HTML document"

const (
	treeClass = "bst"
	nilClass  = "nil"
)

// Render writes a tree as a nested HTML list to w. An empty tree results in
// an empty list.
func Render[T cmp.Ordered](w io.Writer, tree *bst.Tree[T]) error {
	ul := element(atom.Ul, treeClass)
	if !tree.IsEmpty() {
		ul.AppendChild(item(tree.Root()))
	}
	if err := html.Render(w, ul); err != nil {
		tracer().Errorf("rendering tree as HTML: %s", err.Error())
		return err
	}
	return nil
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func item[T cmp.Ordered](n bst.Node[T]) *html.Node {
	li := element(atom.Li, "")
	li.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprint(n.Value()),
	})
	if n.IsLeaf() {
		return li
	}
	children := element(atom.Ul, "")
	l, lok := n.Left()
	r, rok := n.Right()
	for i, child := range [2]bst.Node[T]{l, r} {
		if (i == 0 && lok) || (i == 1 && rok) {
			children.AppendChild(item(child))
		} else {
			children.AppendChild(element(atom.Li, nilClass))
		}
	}
	li.AppendChild(children)
	return li
}

// Labels parses an HTML document and extracts the labels of the first tree
// list contained in it. Labels are returned in pre-order, with empty children
// skipped.
func Labels(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmltree: cannot parse document: %w", err)
	}
	ul := findTree(doc)
	if ul == nil {
		return nil, ErrNoTree
	}
	var labels []string
	collectLabels(ul, &labels)
	tracer().Debugf("found %d labels in HTML tree", len(labels))
	return labels, nil
}

func findTree(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Ul && class(n) == treeClass {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if ul := findTree(c); ul != nil {
			return ul
		}
	}
	return nil
}

func collectLabels(ul *html.Node, labels *[]string) {
	for li := ul.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li || class(li) == nilClass {
			continue
		}
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				*labels = append(*labels, c.Data)
			case c.Type == html.ElementNode && c.DataAtom == atom.Ul:
				collectLabels(c, labels)
			}
		}
	}
}

func class(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}
