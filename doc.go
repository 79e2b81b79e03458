// Package cfdicleaner normalizes Mexican electronic invoice (CFDI)
// documents so they can be re-validated or archived.
//
// # Overview
//
// Issuers routinely attach vendor extensions ("Addenda"), foreign
// namespaces, and duplicated Complemento containers to an already
// signed Comprobante. The SAT tolerates this, strict XSD validation
// does not. cfdicleaner parses the document into a beevik/etree tree,
// runs a fixed sequence of in-place cleaning passes, and hands back a
// minimal document that keeps only content in SAT and W3C namespaces.
//
// # Cleaning passes
//
// [Cleaner.Clean] runs six passes in order, each enforcing one
// invariant. All of them are also callable on their own:
//
//  1. [Cleaner.RemoveAddenda] — drop every Addenda child of the root.
//  2. [Cleaner.RemoveIncompleteSchemaLocations] — best-effort repair of
//     every xsi:schemaLocation value, dropping namespace tokens that
//     have no .xsd location.
//  3. [Cleaner.RemoveNonSatNamespaceNodes] — detach elements and
//     attributes bound to namespaces outside the SAT/W3C allow-list.
//  4. [Cleaner.RemoveNonSatSchemaLocations] — filter disallowed
//     namespace pairs out of every xsi:schemaLocation value.
//  5. [Cleaner.RemoveUnusedNamespaces] — drop xmlns declarations for
//     namespaces outside the allow-list.
//  6. [Cleaner.CollapseComplemento] — merge duplicated root-level
//     Complemento containers into the first one.
//
// The order matters: pass 2 repairs malformed schemaLocation values
// that pass 4 would otherwise reject, and pass 3 detaches foreign
// elements before pass 5 removes the declarations they relied on.
//
// # Errors
//
// Loading fails with [ErrMalformedXML], [ErrUnsupportedDocument],
// [ErrMissingVersion], or [ErrUnsupportedVersion]. Cleaning fails with
// [ErrMalformedSchemaLocation] when a schemaLocation value still has an
// odd token count, and any pass invoked on a zero-value Cleaner fails
// with [ErrNoDocument]. Match with errors.Is; a failed pass leaves the
// tree in an unspecified intermediate state, so treat any error from
// Clean as terminal for that instance.
//
// # Thread Safety
//
// A Cleaner owns one mutable tree. Do not share an instance across
// goroutines. [Cleaner.Document] returns an independent deep copy that
// is safe to use elsewhere.
//
// # Example
//
//	clean, err := cfdicleaner.Clean(sourceXML)
package cfdicleaner
