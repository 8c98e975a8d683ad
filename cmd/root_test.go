package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_Help(t *testing.T) {
	setupCmdTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("root --help failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "forumctl") {
		t.Errorf("expected help output to contain 'forumctl', got:\n%s", out)
	}
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	setupCmdTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"nonexistent-command"})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown command, got nil")
	}
}

func TestRootCmd_SubcommandsList(t *testing.T) {
	setupCmdTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("root --help failed: %v", err)
	}

	out := buf.String()
	for _, name := range []string{
		"login", "register", "logout", "whoami", "profile", "password",
		"home", "events", "community", "threads", "neighborhoods", "market",
		"messages", "report", "upload", "notifications", "search",
		"version", "completion",
	} {
		if !strings.Contains(out, name) {
			t.Errorf("expected help output to list %q command, got:\n%s", name, out)
		}
	}
}
