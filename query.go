package cfdicleaner

import "github.com/beevik/etree"

// This file is the only place that runs structural queries against the
// raw etree APIs. Every selection returns a snapshot slice, so callers
// can detach or rewrite nodes while ranging over the result.

// attrRef points at an attribute together with its owning element, so
// the caller can rewrite or detach it after the walk.
type attrRef struct {
	owner *etree.Element
	attr  etree.Attr
}

// setValue replaces the attribute's value in place on its owner.
func (r attrRef) setValue(value string) {
	r.owner.CreateAttr(r.attr.FullKey(), value)
}

// detachAttr removes the attribute from its owner.
func (r attrRef) detachAttr() {
	r.owner.RemoveAttr(r.attr.FullKey())
}

// walkElements visits el and every descendant element in document
// order.
func walkElements(el *etree.Element, visit func(*etree.Element)) {
	if el == nil {
		return
	}
	visit(el)
	for _, child := range el.ChildElements() {
		walkElements(child, visit)
	}
}

// childElements returns the direct children of parent matching the
// qualified name (namespace URI + local name).
func childElements(parent *etree.Element, namespace, local string) []*etree.Element {
	var out []*etree.Element
	for _, child := range parent.ChildElements() {
		if child.Tag == local && child.NamespaceURI() == namespace {
			out = append(out, child)
		}
	}
	return out
}

// attributesNamed returns every attribute in the tree matching the
// qualified name, at any depth, in document order.
func attributesNamed(doc *etree.Document, namespace, local string) []attrRef {
	var out []attrRef
	walkElements(doc.Root(), func(el *etree.Element) {
		for _, a := range el.Attr {
			if a.Key == local && a.NamespaceURI() == namespace {
				out = append(out, attrRef{owner: el, attr: a})
			}
		}
	})
	return out
}

// elementsInNamespace returns every element bound to the namespace URI,
// at any depth, in document order.
func elementsInNamespace(doc *etree.Document, namespace string) []*etree.Element {
	var out []*etree.Element
	walkElements(doc.Root(), func(el *etree.Element) {
		if el.NamespaceURI() == namespace {
			out = append(out, el)
		}
	})
	return out
}

// attributesInNamespace returns every prefixed attribute resolved to
// the namespace URI. Namespace declarations themselves are excluded.
func attributesInNamespace(doc *etree.Document, namespace string) []attrRef {
	var out []attrRef
	walkElements(doc.Root(), func(el *etree.Element) {
		for _, a := range el.Attr {
			if isNamespaceDecl(a) {
				continue
			}
			if a.Space != "" && a.NamespaceURI() == namespace {
				out = append(out, attrRef{owner: el, attr: a})
			}
		}
	})
	return out
}

// declaredNamespaces returns every namespace URI declared by an xmlns
// or xmlns:prefix binding anywhere in the tree, deduplicated, in
// document order.
func declaredNamespaces(doc *etree.Document) []string {
	seen := make(map[string]bool)
	var out []string
	walkElements(doc.Root(), func(el *etree.Element) {
		for _, a := range el.Attr {
			if isNamespaceDecl(a) && !seen[a.Value] {
				seen[a.Value] = true
				out = append(out, a.Value)
			}
		}
	})
	return out
}

func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// detach removes el (and with it the whole subtree) from its parent.
// A nil or already-detached element is a no-op.
func detach(el *etree.Element) {
	if el == nil {
		return
	}
	if parent := el.Parent(); parent != nil {
		parent.RemoveChild(el)
	}
}

// removeNamespaceBinding drops every xmlns declaration for the given
// URI, wherever it is declared.
func removeNamespaceBinding(doc *etree.Document, uri string) int {
	var bindings []attrRef
	walkElements(doc.Root(), func(el *etree.Element) {
		for _, a := range el.Attr {
			if isNamespaceDecl(a) && a.Value == uri {
				bindings = append(bindings, attrRef{owner: el, attr: a})
			}
		}
	})
	for _, b := range bindings {
		b.detachAttr()
	}
	return len(bindings)
}
