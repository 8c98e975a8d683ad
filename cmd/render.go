package cmd

import (
	"github.com/Sowjanyakambhampati/forumctl/internal/output"
)

func newStdoutTable(headers []string) *output.Table {
	return output.NewQuietTable(headers, quiet)
}

// renderOrEmpty renders the table, or an informational line when it has no
// rows so empty results don't print a lone header.
func renderOrEmpty(t *output.Table, emptyMsg string) {
	if t.Len() == 0 {
		printer.Info("%s", emptyMsg)
		return
	}
	t.Render()
}
