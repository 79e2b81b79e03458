package cfdicleaner

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Cleaner owns one loaded comprobante tree and mutates it in place.
// Obtain one with [Load]; the zero value fails every pass with
// [ErrNoDocument].
type Cleaner struct {
	doc     *etree.Document
	version string
	log     *zap.Logger
}

// Option configures a Cleaner at load time.
type Option func(*Cleaner)

// WithLogger attaches a logger. The passes log what they remove at
// Debug level. Without it logging is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(c *Cleaner) {
		if log != nil {
			c.log = log
		}
	}
}

func newCleaner(opts ...Option) *Cleaner {
	c := &Cleaner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean loads source, runs all cleaning passes, and returns the
// serialized result.
func Clean(source string, opts ...Option) (string, error) {
	c, err := Load(source, opts...)
	if err != nil {
		return "", err
	}
	if err := c.Clean(); err != nil {
		return "", err
	}
	return c.XML()
}

// Clean runs the six cleaning passes in their fixed order and stops at
// the first failure. Every pass is idempotent, so running Clean on an
// already-clean document changes nothing.
func (c *Cleaner) Clean() error {
	steps := []func() error{
		c.RemoveAddenda,
		c.RemoveIncompleteSchemaLocations,
		c.RemoveNonSatNamespaceNodes,
		c.RemoveNonSatSchemaLocations,
		c.RemoveUnusedNamespaces,
		c.CollapseComplemento,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Version returns the comprobante version read at load time, or "" on
// a zero-value Cleaner.
func (c *Cleaner) Version() string {
	return c.version
}

// XML returns the serialized form of the tree's current state.
func (c *Cleaner) XML() (string, error) {
	if c.doc == nil {
		return "", ErrNoDocument
	}
	return c.doc.WriteToString()
}

// Document returns an independent deep copy of the tree's current
// state. The copy shares no node with the live tree, so the caller may
// keep it while this Cleaner continues to mutate.
func (c *Cleaner) Document() (*etree.Document, error) {
	if c.doc == nil {
		return nil, ErrNoDocument
	}
	return c.doc.Copy(), nil
}

// RemoveAddenda detaches every Addenda child of the root, including
// the whole vendor subtree under each one.
func (c *Cleaner) RemoveAddenda() error {
	if c.doc == nil {
		return ErrNoDocument
	}
	addendas := childElements(c.doc.Root(), ComprobanteNamespace, "Addenda")
	for _, el := range addendas {
		detach(el)
	}
	if len(addendas) > 0 {
		c.log.Debug("removed addenda", zap.Int("count", len(addendas)))
	}
	return nil
}

// RemoveIncompleteSchemaLocations rewrites every xsi:schemaLocation
// value in the tree through [RemoveIncompleteSchemaLocation]. This is
// the best-effort repair pass: it drops namespace tokens without an
// .xsd location instead of failing on them.
func (c *Cleaner) RemoveIncompleteSchemaLocations() error {
	if c.doc == nil {
		return ErrNoDocument
	}
	for _, ref := range attributesNamed(c.doc, xsiNamespace, "schemaLocation") {
		repaired := RemoveIncompleteSchemaLocation(ref.attr.Value)
		if repaired != ref.attr.Value {
			ref.setValue(repaired)
			c.log.Debug("repaired schemaLocation",
				zap.String("before", ref.attr.Value),
				zap.String("after", repaired))
		}
	}
	return nil
}

// RemoveNonSatNamespaceNodes detaches every element and prefixed
// attribute bound to a declared namespace outside the SAT/W3C
// allow-list. Detaching an element takes its whole subtree with it.
func (c *Cleaner) RemoveNonSatNamespaceNodes() error {
	if c.doc == nil {
		return ErrNoDocument
	}
	for _, ns := range declaredNamespaces(c.doc) {
		if ns == "" || IsNamespaceAllowed(ns) {
			continue
		}
		elements := elementsInNamespace(c.doc, ns)
		for _, el := range elements {
			detach(el)
		}
		attrs := attributesInNamespace(c.doc, ns)
		for _, ref := range attrs {
			ref.detachAttr()
		}
		if len(elements) > 0 || len(attrs) > 0 {
			c.log.Debug("removed foreign namespace content",
				zap.String("namespace", ns),
				zap.Int("elements", len(elements)),
				zap.Int("attributes", len(attrs)))
		}
	}
	return nil
}

// RemoveNonSatSchemaLocations filters disallowed-namespace pairs out of
// every xsi:schemaLocation value. A value whose pairs are all allowed
// is left byte-identical; a value left with no pairs has its attribute
// detached. A value with an odd token count fails with
// [ErrMalformedSchemaLocation] — run the repair pass first.
func (c *Cleaner) RemoveNonSatSchemaLocations() error {
	if c.doc == nil {
		return ErrNoDocument
	}
	for _, ref := range attributesNamed(c.doc, xsiNamespace, "schemaLocation") {
		locations := ParseSchemaLocations(ref.attr.Value)
		if locations.HasDanglingNamespace() {
			return fmt.Errorf("%w: %q", ErrMalformedSchemaLocation, ref.attr.Value)
		}
		filtered := locations.Filter(IsNamespaceAllowed)
		switch {
		case filtered.Len() == locations.Len():
			// nothing filtered, keep the original bytes
		case filtered.Len() == 0:
			ref.detachAttr()
			c.log.Debug("removed empty schemaLocation", zap.String("was", ref.attr.Value))
		default:
			ref.setValue(filtered.String())
			c.log.Debug("filtered schemaLocation",
				zap.String("before", ref.attr.Value),
				zap.String("after", filtered.String()))
		}
	}
	return nil
}

// RemoveUnusedNamespaces drops every xmlns declaration for a namespace
// outside the SAT/W3C allow-list. Runs after the foreign elements are
// gone, so no surviving node still relies on the dropped bindings.
func (c *Cleaner) RemoveUnusedNamespaces() error {
	if c.doc == nil {
		return ErrNoDocument
	}
	for _, ns := range declaredNamespaces(c.doc) {
		if ns == "" || IsNamespaceAllowed(ns) {
			continue
		}
		if n := removeNamespaceBinding(c.doc, ns); n > 0 {
			c.log.Debug("removed namespace binding",
				zap.String("namespace", ns), zap.Int("count", n))
		}
	}
	return nil
}

// CollapseComplemento merges duplicated root-level Complemento
// containers: the children of every Complemento after the first are
// appended to the first one, in original left-to-right top-to-bottom
// order, and the emptied extras are detached. Fewer than two is a
// no-op.
func (c *Cleaner) CollapseComplemento() error {
	if c.doc == nil {
		return ErrNoDocument
	}
	root := c.doc.Root()
	complementos := childElements(root, ComprobanteNamespace, "Complemento")
	if len(complementos) < 2 {
		return nil
	}
	first := complementos[0]
	for _, extra := range complementos[1:] {
		children := append([]etree.Token(nil), extra.Child...)
		for _, tok := range children {
			extra.RemoveChild(tok)
			first.AddChild(tok)
		}
		detach(extra)
	}
	c.log.Debug("collapsed complemento", zap.Int("merged", len(complementos)-1))
	return nil
}
