package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	abortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type console struct {
	w io.Writer
}

func (c console) errorf(format string, args ...any) {
	fmt.Fprintln(c.w, errorStyle.Render("ERROR:")+" "+fmt.Sprintf(format, args...))
}

func (c console) warnf(format string, args ...any) {
	fmt.Fprintln(c.w, abortStyle.Render("Warning:")+" "+fmt.Sprintf(format, args...))
}

func (c console) aborted(reason string) {
	fmt.Fprintln(c.w, "\n"+abortStyle.Render("ABORTED - "+reason))
}

func (c console) info(text string) {
	fmt.Fprintln(c.w, infoStyle.Render(text))
}

func (c console) ok(text string) {
	fmt.Fprintln(c.w, okStyle.Render(text))
}

func (c console) dim(text string) {
	fmt.Fprintln(c.w, dimStyle.Render(text))
}
