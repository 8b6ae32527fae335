// Package formatter provides response wrapping and serialization for SIRI responses.
//
// This package is organized into:
// - wrapper.go: ServiceDelivery wrapping
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// XML is written by hand to control element order and the xml:lang attributes.
package formatter
