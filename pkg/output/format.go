package output

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a plan is printed
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats lists the accepted format names
var Formats = []Format{FormatTable, FormatYAML, FormatJSON}

// ParseFormat parses a format name. The empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (want table, yaml or json)", s).
			WithDetail("format", s)
	}
}

// DetectColor reports whether styled output should be written to w
func DetectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}
