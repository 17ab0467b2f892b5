package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Generate      func(GenerateArgs) (Result, error)
	Toggle        func(ToggleArgs) (Result, error)
	Plan          func(PlanArgs) (Result, error)
	Show          func(ShowArgs) (Result, error)
	Notifications func(NotificationsArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeGenerate:
		if handlers.Generate == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "generate handler not configured"}
		}
		return handlers.Generate(*cmd.Generate)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "toggle handler not configured"}
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypePlan:
		if handlers.Plan == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "plan handler not configured"}
		}
		return handlers.Plan(*cmd.Plan)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeNotifications:
		if handlers.Notifications == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "notifications handler not configured"}
		}
		return handlers.Notifications(*cmd.Notifications)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
