package cli

import (
	"bytes"
	"testing"
)

func TestRootCmdRequiresFeedPath(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected a usage error when the feed path is missing")
	}
}

func TestRootCmdRejectsExtraArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"feed.xml", "extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected a usage error for extra arguments")
	}
}
