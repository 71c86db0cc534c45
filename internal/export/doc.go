// Package export writes render models and canvas previews as SVG documents.
package export
