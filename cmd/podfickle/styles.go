package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mintGreen  = lipgloss.Color("#A8E6CF")
	mutedGray  = lipgloss.Color("#6B7280")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mintGreen).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(salmonPink)
)

func printHeader(w io.Writer, command, workID string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("podfickle %s", command))+" "+stepStyle.Render("work "+workID))
}

func printStep(w io.Writer, step string) {
	fmt.Fprintln(w, stepStyle.Render("• "+step))
}

func printNotice(w io.Writer, notice string) {
	fmt.Fprintln(w, noticeStyle.Render(notice))
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+err.Error()))
}
