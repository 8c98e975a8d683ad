package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"login":              {"whoami", "events list"},
	"register":           {"login"},
	"logout":             {"login"},
	"whoami":             {"profile update", "notifications"},
	"events list":        {"events show <id>", "events register <id>"},
	"events show":        {"events register <id>", "events comment <id>"},
	"events register":    {"events list --mine"},
	"community list":     {"community show <id>", "community create"},
	"community show":     {"community comment <id>"},
	"threads list":       {"threads show <id>", "threads create"},
	"threads show":       {"threads reply <id>", "threads vote <id>"},
	"neighborhoods list": {"neighborhoods show <id>", "neighborhoods join <id>"},
	"market list":        {"market show <id>", "market create"},
	"market show":        {"market favorite <id>"},
	"notifications":      {"notifications --read-all"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet || p.json {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "forumctl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
