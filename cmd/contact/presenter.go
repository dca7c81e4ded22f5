package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashimpoudel/portfolio/pkg/validator"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300"))
)

// terminalPresenter prints form feedback. Success goes to out, problems to errOut.
type terminalPresenter struct {
	out    io.Writer
	errOut io.Writer
}

func newPresenter(out, errOut io.Writer) *terminalPresenter {
	return &terminalPresenter{out: out, errOut: errOut}
}

func (p *terminalPresenter) ShowFieldErrors(errs validator.ValidationErrors) {
	for _, e := range errs {
		fmt.Fprintf(p.errOut, "%s %s\n", fieldStyle.Render("--"+e.Field+":"), e.Message)
	}
}

func (p *terminalPresenter) ShowSuccess(message string) {
	fmt.Fprintln(p.out, successStyle.Render(message))
}

func (p *terminalPresenter) ShowError(message string) {
	fmt.Fprintln(p.errOut, errorStyle.Render(message))
}
