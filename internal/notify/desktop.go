package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// DesktopNotifier displays an immediate system notification. Sends are
// fire-and-forget: a missing helper binary or denied permission degrades to
// a no-op and never blocks or errors back into plan handling.
type DesktopNotifier interface {
	Send(title, body string) error
}

type Noop struct{}

func (Noop) Send(string, string) error { return nil }

type Exec struct{}

func (Exec) Send(title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
