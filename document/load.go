package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/oascheck/oaserrors"
)

// Format is the text syntax of a source document.
type Format int

const (
	// FormatUnknown means the format should be detected from content.
	FormatUnknown Format = iota
	// FormatJSON is JSON text.
	FormatJSON
	// FormatYAML is YAML text.
	FormatYAML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// FormatFromPath selects a format by file extension: .yaml and .yml are YAML,
// every other path is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DetectFormat guesses the format from content: text whose first
// non-whitespace byte opens an object or array is JSON, anything else YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Document is a loaded OpenAPI document.
type Document struct {
	// Root is the top-level mapping.
	Root *Mapping
	// SourcePath is the file the document was read from ("" for in-memory input).
	SourcePath string
	// Format is the syntax the document was parsed with.
	Format Format
	// SourceSize is the size of the source text in bytes.
	SourceSize int64
	// LoadTime is the time spent reading and parsing the source.
	LoadTime time.Duration
}

// Parse parses data in the given format. FormatUnknown sniffs the content.
// Failures are returned as *oaserrors.ParseError.
func Parse(data []byte, format Format) (*Document, error) {
	start := time.Now()
	if format == FormatUnknown {
		format = DetectFormat(data)
	}

	var (
		root *Mapping
		err  error
	)
	switch format {
	case FormatYAML:
		root, err = ParseYAML(data)
	default:
		format = FormatJSON
		root, err = ParseJSON(data)
	}
	if err != nil {
		return nil, newParseError(format, err)
	}

	return &Document{
		Root:       root,
		Format:     format,
		SourceSize: int64(len(data)),
		LoadTime:   time.Since(start),
	}, nil
}

// Load reads and parses the file at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}

	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	doc.SourcePath = path
	doc.LoadTime = time.Since(start)
	return doc, nil
}

// LoadReader reads all of r and parses it. FormatUnknown sniffs the content.
func LoadReader(r io.Reader, format Format) (*Document, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to read data", Cause: err}
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = time.Since(start)
	return doc, nil
}

func newParseError(format Format, err error) *oaserrors.ParseError {
	pe := &oaserrors.ParseError{
		Message: fmt.Sprintf("invalid %s", strings.ToUpper(format.String())),
		Cause:   err,
	}
	var posErr *positionedError
	if errors.As(err, &posErr) {
		pe.Line = posErr.pos.Line
		pe.Column = posErr.pos.Column
		pe.Cause = posErr.err
	}
	return pe
}
