package plistfile

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/indaco/update-plist/internal/core"
	"howett.net/plist"
)

// errEmpty is returned when the file holds no bytes at all.
var errEmpty = errors.New("empty property list")

// Document is a property list with a dictionary root.
type Document struct {
	// Format is the serialization the document was decoded from.
	Format Format

	values map[string]any
}

// Decode parses data as an XML or binary property list with a dictionary root.
func Decode(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, errEmpty
	}

	var values map[string]any
	codec, err := plist.Unmarshal(data, &values)
	if err != nil {
		return nil, err
	}

	format, err := formatFromCodec(codec)
	if err != nil {
		return nil, err
	}

	if values == nil {
		return nil, errors.New("property list root is not a dictionary")
	}

	return &Document{Format: format, values: values}, nil
}

// Load reads and decodes the property list stored at path.
func Load(ctx context.Context, fs core.FileSystem, path string) (*Document, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse property list %q: %w", path, err)
	}

	return doc, nil
}

// Save encodes doc and writes it to path, truncating the file.
// FormatPreserve (or an empty format) reuses doc.Format.
func Save(ctx context.Context, fs core.FileSystem, path string, doc *Document, format Format) error {
	data, err := doc.Encode(format)
	if err != nil {
		return fmt.Errorf("failed to encode property list for %q: %w", path, err)
	}

	if err := fs.WriteFile(ctx, path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}

	return nil
}

// Encode serializes the document. XML output is tab indented.
func (d *Document) Encode(format Format) ([]byte, error) {
	if format == "" || format == FormatPreserve {
		format = d.Format
	}

	codec, err := format.codecFormat()
	if err != nil {
		return nil, err
	}

	if codec == plist.XMLFormat {
		return plist.MarshalIndent(d.values, codec, "\t")
	}
	return plist.Marshal(d.values, codec)
}

// Get returns the raw value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// String returns the value under key when it is a string.
func (d *Document) String(key string) (string, bool) {
	v, ok := d.values[key].(string)
	return v, ok
}

// Set stores value under key, replacing whatever was there.
func (d *Document) Set(key string, value any) {
	d.values[key] = value
}

// Keys returns the top-level keys in sorted order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.values)
}
