package cfdicleaner

import "errors"

// Sentinel errors returned by Load and the cleaning passes. All of them
// are non-retryable: the caller must fix the input and resubmit. Match
// with errors.Is; the concrete error may carry extra detail.
var (
	// ErrMalformedXML means the source text is not well-formed XML.
	ErrMalformedXML = errors.New("cfdicleaner: malformed xml")

	// ErrUnsupportedDocument means the root element is not in the SAT
	// Comprobante namespace.
	ErrUnsupportedDocument = errors.New("cfdicleaner: root element is not a CFDI Comprobante")

	// ErrMissingVersion means the root element has no version attribute.
	ErrMissingVersion = errors.New("cfdicleaner: comprobante has no version attribute")

	// ErrUnsupportedVersion means the document declares a version this
	// package does not handle.
	ErrUnsupportedVersion = errors.New("cfdicleaner: unsupported comprobante version")

	// ErrMalformedSchemaLocation means an xsi:schemaLocation value has a
	// namespace with no matching location (odd token count).
	ErrMalformedSchemaLocation = errors.New("cfdicleaner: schemaLocation contains a namespace without a location")

	// ErrNoDocument means a pass was invoked before a document was
	// loaded.
	ErrNoDocument = errors.New("cfdicleaner: no document loaded")
)
