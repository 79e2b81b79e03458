package cfdicleaner

import (
	"fmt"
	"slices"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Load parses source as XML and validates that it is a supported CFDI
// comprobante. The root element must be in the SAT Comprobante
// namespace and must declare one of the supported versions ("3.2" in a
// "version" attribute, "3.3" in "Version"). Non-UTF-8 encodings are
// handled through the document's declared charset; 3.2 emitters often
// use ISO-8859-1.
func Load(source string, opts ...Option) (*Cleaner, error) {
	c := newCleaner(opts...)

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromString(source); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrMalformedXML)
	}
	if ns := root.NamespaceURI(); ns != ComprobanteNamespace {
		return nil, fmt.Errorf("%w: root namespace %q", ErrUnsupportedDocument, ns)
	}

	version := documentVersion(root)
	if version == "" {
		return nil, ErrMissingVersion
	}
	if !slices.Contains(supportedVersions, version) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}

	c.doc = doc
	c.version = version
	c.log.Debug("document loaded", zap.String("version", version))
	return c, nil
}

// documentVersion reads the version attribute off the root element.
// CFDI 3.3 uses "Version", 3.2 uses "version".
func documentVersion(root *etree.Element) string {
	if v := root.SelectAttrValue("Version", ""); v != "" {
		return v
	}
	return root.SelectAttrValue("version", "")
}
