package output

import "strings"

// Format specifies how listing commands render their results.
type Format string

const (
	// FormatTable renders a styled table.
	FormatTable Format = "table"

	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses s case-insensitively. The second result is false when s
// names no known format; the returned format is then FormatTable.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return FormatTable, false
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
