package cfdicleaner

import "strings"

// Namespace roots and well-known namespaces. These are fixed by the
// SAT and the W3C; they are compiled in rather than configurable.
const (
	// satNamespacePrefix matches every namespace published by the SAT,
	// including the Comprobante namespace and all complementos.
	satNamespacePrefix = "http://www.sat.gob.mx/"

	// w3cNamespacePrefix matches W3C namespaces such as XML Schema
	// instance and XML digital signature.
	w3cNamespacePrefix = "http://www.w3.org/"

	// ComprobanteNamespace is the namespace of the CFDI root element for
	// every supported version.
	ComprobanteNamespace = "http://www.sat.gob.mx/cfd/3"

	// xsiNamespace owns the schemaLocation attribute.
	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// supportedVersions lists the comprobante versions the cleaner accepts.
// CFDI 3.2 declares its version in a lowercase "version" attribute,
// 3.3 in "Version".
var supportedVersions = []string{"3.2", "3.3"}

// IsNamespaceAllowed reports whether content in the given namespace URI
// survives cleaning. Only SAT and W3C namespaces are retained. The
// empty URI is not allowed: nodes with no namespace are never targeted
// by namespace-based removal, so callers must special-case them.
func IsNamespaceAllowed(uri string) bool {
	return strings.HasPrefix(uri, w3cNamespacePrefix) ||
		strings.HasPrefix(uri, satNamespacePrefix)
}
