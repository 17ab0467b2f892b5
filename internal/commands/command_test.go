package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/generate Physics, Calculus by:2026-03-15 hours:3", TypeGenerate},
		{"toggle 4", TypeToggle},
		{"plan 9f2c1a", TypePlan},
		{"show Physics", TypeShow},
		{"notifications clear", TypeNotifications},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseGenerateFields(t *testing.T) {
	cmd, err := Parse("generate Physics, Linear Algebra by:2026-03-15 hours:3 notes:focus on integrals")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	g := cmd.Generate
	if g == nil {
		t.Fatal("missing generate args")
	}
	if g.Subjects != "Physics, Linear Algebra" {
		t.Fatalf("subjects = %q", g.Subjects)
	}
	if g.Deadline != "2026-03-15" {
		t.Fatalf("deadline = %q", g.Deadline)
	}
	if g.Hours != "3" {
		t.Fatalf("hours = %q", g.Hours)
	}
	if g.Notes != "focus on integrals" {
		t.Fatalf("notes = %q", g.Notes)
	}
}

func TestParseGenerateMissingDeadline(t *testing.T) {
	_, err := Parse("generate Physics hours:2")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseToggleRejectsBadID(t *testing.T) {
	for _, in := range []string{"toggle", "toggle abc", "toggle -1", "toggle 1 2"} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("parse %q: expected error", in)
		}
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseNotificationsActions(t *testing.T) {
	for _, in := range []string{"notifications clear", "notifications read"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if cmd.Notifications == nil {
			t.Fatalf("parse %q: missing args", in)
		}
	}
	_, err := Parse("notifications purge")
	if err == nil {
		t.Fatal("expected error for unsupported action")
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/toggle 7")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Toggle: func(a ToggleArgs) (Result, error) {
			called = true
			if a.TaskID != 7 {
				t.Fatalf("unexpected task id: %d", a.TaskID)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show Physics")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
