package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"jopvault/internal/ports"
)

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// Notifier writes styled progress and problem reports to a writer.
type Notifier struct {
	out io.Writer
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier writing to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Progressf(format string, args ...any) {
	fmt.Fprintln(n.out, progressStyle.Render(fmt.Sprintf(format, args...)))
}

func (n *Notifier) Warnf(format string, args ...any) {
	fmt.Fprintln(n.out, warnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

func (n *Notifier) Errorf(format string, args ...any) {
	fmt.Fprintln(n.out, errorStyle.Render("error: "+fmt.Sprintf(format, args...)))
}
