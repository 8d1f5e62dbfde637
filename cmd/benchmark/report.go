package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const columnWidth = 20

// writeReport writes one table per executable listing the size of each test
// case and the time it took.
func writeReport(w io.Writer, runID string, exes []executable, results []caseResult) {
	fmt.Fprintln(w, dimStyle.Render("run "+runID))
	for i, exe := range exes {
		fmt.Fprintln(w, titleStyle.Render("For "+exe.Title))
		fmt.Fprintln(w, headerStyle.Render(row("Number of Nodes", "Number of Links", "Execution Time ("+exe.Label+")")))
		for _, res := range results {
			fmt.Fprintln(w, row(count(res.Nodes), count(res.Edges), fmt.Sprintf("%.6f", res.Times[i].Seconds())))
		}
	}
	for _, res := range results {
		if res.Mismatch {
			fmt.Fprintln(w, mismatchStyle.Render("outputs differ on "+res.File))
		}
	}
}

func row(a, b, c string) string {
	return fmt.Sprintf("%-*s%-*s%s", columnWidth, a, columnWidth, b, c)
}

func count(n int) string {
	if n < 0 {
		return "?"
	}
	return strconv.Itoa(n)
}
