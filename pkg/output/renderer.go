package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/treedump/pkg/dump"
	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/arthur-debert/treedump/pkg/logging"
	"github.com/arthur-debert/treedump/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes plans, summaries and errors to a writer
type Renderer struct {
	writer  io.Writer
	noColor bool
	styles  Styles
}

// NewRenderer creates a Renderer for w. With noColor set every style
// renders as plain text.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	log := logging.GetLogger("output")

	lg := lipgloss.NewRenderer(w)
	if noColor {
		lg.SetColorProfile(termenv.Ascii)
	}
	log.Debug().
		Bool("noColor", noColor).
		Str("colorProfile", fmt.Sprintf("%v", lg.ColorProfile())).
		Msg("Created renderer")

	return &Renderer{
		writer:  w,
		noColor: noColor,
		styles:  NewStyles(lg),
	}
}

// planEntry is the serialized form of a types.Entry
type planEntry struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Kind        string `json:"kind" yaml:"kind"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
	Decision    string `json:"decision,omitempty" yaml:"decision,omitempty"`
}

func toPlanEntries(entries []types.Entry) []planEntry {
	out := make([]planEntry, 0, len(entries))
	for _, e := range entries {
		pe := planEntry{
			Source:      e.Source,
			Destination: e.Destination,
			Kind:        string(e.Kind),
		}
		if e.IsSymlink() {
			pe.Link = e.Link
			pe.Decision = e.Decision.String()
		}
		out = append(out, pe)
	}
	return out
}

// RenderPlan prints entries in the given format. Table rows show
// destinations relative to destinationRoot.
func (r *Renderer) RenderPlan(entries []types.Entry, destinationRoot string, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(toPlanEntries(entries))
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		if err := enc.Encode(toPlanEntries(entries)); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		return r.renderTable(entries, destinationRoot)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}
}

func (r *Renderer) renderTable(entries []types.Entry, destinationRoot string) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.writer, r.styles.Muted.Render("Nothing to copy"))
		return err
	}

	data := pterm.TableData{{"KIND", "DESTINATION", "ACTION", "LINK"}}
	var kept, followed int
	for _, e := range entries {
		dest := e.Destination
		if rel, err := filepath.Rel(destinationRoot, e.Destination); err == nil {
			dest = rel
		}

		action := "copy"
		switch {
		case e.Kind == types.KindDirectory:
			action = "create"
		case e.IsSymlink() && e.Decision.FollowSymlinks():
			action = r.styles.Follow.Render("follow")
			followed++
		case e.IsSymlink():
			action = r.styles.Preserve.Render("keep link")
			kept++
		}

		data = append(data, []string{string(e.Kind), dest, action, r.styles.Path.Render(e.Link)})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if r.noColor {
		rendered = pterm.RemoveColorFromString(rendered)
	}

	summary := fmt.Sprintf("%d entries, %d links kept, %d links followed", len(entries), kept, followed)
	_, err = fmt.Fprintf(r.writer, "%s\n\n%s\n", rendered, r.styles.Muted.Render(summary))
	return err
}

// RenderSummary prints the one line report of a finished run
func (r *Renderer) RenderSummary(result *dump.Result, destinationRoot string) error {
	line := fmt.Sprintf("%s %s: %d directories, %d files, %d links kept, %d links followed",
		r.styles.Success.Render("Replicated into"),
		r.styles.Path.Render(destinationRoot),
		result.Directories, result.Files, result.Preserved, result.Followed)
	_, err := fmt.Fprintln(r.writer, line)
	return err
}

// RenderError prints err. Invalid symlinks get a second line naming the
// link to fix.
func (r *Renderer) RenderError(err error) error {
	out := fmt.Sprintf("%s %s", r.styles.Error.Render("Error:"), err.Error())
	if path, ok := errors.InvalidSymlinkPath(err); ok {
		out += "\n" + r.styles.Muted.Render("  offending link: ") + r.styles.Path.Render(path)
	}
	_, writeErr := fmt.Fprintln(r.writer, out)
	return writeErr
}
