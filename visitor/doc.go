// Package visitor shows the Visitor pattern with a tiny document model.
//
// A Document is a list of Elements (Title, Text, HyperLink). Exporters are
// Visitors: the element picks the Visit method (double dispatch), so adding
// a new export format means adding a Visitor, not touching the elements.
//
// Visitors:
//
//   - HTMLExporter writes <h1>, <p> and <a href> lines, HTML-escaped.
//   - PlainTextExporter writes one line per element, "text url" for links.
//   - JSONExporter collects the parts and encodes them as a JSON array of
//     {"kind", "text", "url"} objects.
//
// Node and Walk are the closed rendition: a Node is tagged KindTitle,
// KindText or KindLink and a visitor is a plain func(Node) error.
package visitor
