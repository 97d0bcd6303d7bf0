package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colours, switching between light and dark terminals
var (
	PreserveColor = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"}
	FollowColor   = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	SuccessColor  = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor    = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	MutedColor    = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	PathColor     = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
)

// Styles holds the styles bound to one lipgloss renderer
type Styles struct {
	Preserve lipgloss.Style
	Follow   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Path     lipgloss.Style
	Bold     lipgloss.Style
}

// NewStyles builds the style set for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Preserve: r.NewStyle().Foreground(PreserveColor),
		Follow:   r.NewStyle().Foreground(FollowColor).Bold(true),
		Success:  r.NewStyle().Foreground(SuccessColor).Bold(true),
		Error:    r.NewStyle().Foreground(ErrorColor).Bold(true),
		Muted:    r.NewStyle().Foreground(MutedColor),
		Path:     r.NewStyle().Foreground(PathColor).Italic(true),
		Bold:     r.NewStyle().Bold(true),
	}
}
