package plistfile

import (
	"fmt"

	"howett.net/plist"
)

// Format represents the supported property list serializations.
type Format string

const (
	// FormatPreserve writes a document back in the format it was read from.
	FormatPreserve Format = "preserve"

	// FormatXML is the XML property list (<plist version="1.0">).
	FormatXML Format = "xml"

	// FormatBinary is the bplist00 binary property list.
	FormatBinary Format = "binary"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatPreserve, FormatXML, FormatBinary:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format. An empty string means preserve.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatPreserve, nil
	}
	f := Format(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown property list format %q (want preserve, xml or binary)", s)
	}
	return f, nil
}

// codecFormat maps a concrete Format to the codec constant.
func (f Format) codecFormat() (int, error) {
	switch f {
	case FormatXML:
		return plist.XMLFormat, nil
	case FormatBinary:
		return plist.BinaryFormat, nil
	default:
		return plist.InvalidFormat, fmt.Errorf("format %q cannot be encoded directly", f)
	}
}

// formatFromCodec maps a detected codec constant back to a Format.
func formatFromCodec(c int) (Format, error) {
	switch c {
	case plist.XMLFormat:
		return FormatXML, nil
	case plist.BinaryFormat:
		return FormatBinary, nil
	default:
		name, ok := plist.FormatNames[c]
		if !ok {
			name = fmt.Sprintf("format %d", c)
		}
		return "", fmt.Errorf("unsupported property list format: %s", name)
	}
}
