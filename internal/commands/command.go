package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeGenerate      Type = "generate"
	TypeToggle        Type = "toggle"
	TypePlan          Type = "plan"
	TypeShow          Type = "show"
	TypeNotifications Type = "notifications"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// GenerateArgs carries a plan request typed into the palette, e.g.
// "generate Physics, Calculus by:2026-03-15 hours:3".
type GenerateArgs struct {
	Subjects string
	Deadline string
	Hours    string
	Notes    string
}

type ToggleArgs struct {
	TaskID int
}

type PlanArgs struct {
	PlanID string
}

type ShowArgs struct {
	Subject string
}

type NotificationsArgs struct {
	Action string
}

type Command struct {
	Type          Type
	Raw           string
	Generate      *GenerateArgs
	Toggle        *ToggleArgs
	Plan          *PlanArgs
	Show          *ShowArgs
	Notifications *NotificationsArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeGenerate:
		return parseGenerate(input, args)
	case TypeToggle:
		return parseToggle(input, args)
	case TypePlan:
		return parsePlan(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeNotifications:
		return parseNotifications(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseGenerate(raw string, args []string) (Command, error) {
	out := GenerateArgs{}
	var subjects []string
	var notes []string
	inNotes := false
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "by:"):
			out.Deadline = strings.TrimSpace(arg[len("by:"):])
			inNotes = false
		case strings.HasPrefix(lower, "hours:"):
			out.Hours = strings.TrimSpace(arg[len("hours:"):])
			inNotes = false
		case strings.HasPrefix(lower, "notes:"):
			inNotes = true
			if rest := strings.TrimSpace(arg[len("notes:"):]); rest != "" {
				notes = append(notes, rest)
			}
		case inNotes:
			notes = append(notes, arg)
		default:
			subjects = append(subjects, arg)
		}
	}
	out.Subjects = strings.Join(subjects, " ")
	out.Notes = strings.Join(notes, " ")
	if out.Subjects == "" || out.Deadline == "" || out.Hours == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "generate requires subjects, by:<date>, and hours:<n>"}
	}
	return Command{Type: TypeGenerate, Raw: raw, Generate: &out}, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a task id"}
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", args[0])}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{TaskID: id}}, nil
}

func parsePlan(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plan requires a plan id"}
	}
	return Command{Type: TypePlan, Raw: raw, Plan: &PlanArgs{PlanID: args[0]}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
}

func parseNotifications(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "notifications requires clear or read"}
	}
	action := strings.ToLower(args[0])
	if action != "clear" && action != "read" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported notifications action: %s", action)}
	}
	return Command{Type: TypeNotifications, Raw: raw, Notifications: &NotificationsArgs{Action: action}}, nil
}
