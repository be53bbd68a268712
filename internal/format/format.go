// Package format recommends a serialization format for a target model
// and supplies the matching placeholder template skeleton.
package format

import "strings"

// Format is a supported output serialization format
type Format int

const (
	Markdown Format = iota
	JSON
	XML
	YAML
	Text
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case XML:
		return "xml"
	case YAML:
		return "yaml"
	case Text:
		return "text"
	default:
		return "markdown"
	}
}

// Formats lists every format in display order
var Formats = []Format{Markdown, JSON, XML, YAML, Text}

// Parse maps a format name to a Format, defaulting to markdown.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON
	case "xml":
		return XML
	case "yaml", "yml":
		return YAML
	case "text", "plain", "txt":
		return Text
	default:
		return Markdown
	}
}
