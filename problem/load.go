package problem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/searchlab/core"
)

// Format names a problem file encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// FormatOf infers the format from a path: .yaml and .yml are YAML, anything
// else (the course uses .txt) is text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads a problem file, choosing the parser by extension.
func Load(path string, opts ...core.GraphOption) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: failed to open file: %w", err)
	}
	defer fh.Close()

	return Decode(fh, FormatOf(path), opts...)
}

// Decode parses r in the given format.
func Decode(r io.Reader, format Format, opts ...core.GraphOption) (*File, error) {
	switch format {
	case FormatText:
		return Parse(r, opts...)
	case FormatYAML:
		return ParseYAML(r, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, f)
	case FormatYAML:
		return WriteYAML(w, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
