package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ews-go/ews"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func heading(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf(format, args...)))
}

func field(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label+":"), value)
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, okStyle.Render(fmt.Sprintf(format, args...)))
}

func none(w io.Writer, what string) {
	fmt.Fprintln(w, dimStyle.Render("No "+what+" found."))
}

func formatMailbox(m ews.Mailbox) string {
	switch {
	case m.Name != "" && m.Address != "":
		return fmt.Sprintf("%s <%s>", m.Name, m.Address)
	case m.Address != "":
		return m.Address
	default:
		return m.Name
	}
}

func formatMailboxes(ms []ews.Mailbox) string {
	parts := make([]string, 0, len(ms))
	for _, m := range ms {
		parts = append(parts, formatMailbox(m))
	}
	return strings.Join(parts, ", ")
}

func printItemID(w io.Writer, id ews.ItemID) {
	field(w, "Id", id.ID)
	field(w, "ChangeKey", id.ChangeKey)
}
