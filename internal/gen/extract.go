package gen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nishantrao/studyd/internal/model"
)

// taskRecord is the wire shape of one generated session.
type taskRecord struct {
	Day         string `json:"day"`
	TimeSlot    string `json:"timeSlot"`
	Subject     string `json:"subject"`
	Topic       string `json:"topic"`
	Task        string `json:"task"`
	Description string `json:"description"`
}

type planEnvelope struct {
	Plan []taskRecord `json:"plan"`
}

// ExtractTasks pulls the task list out of raw model output. Generation
// models wrap JSON in code fences and prose; the first balanced object is
// taken. Every record must carry all fields, and the result is an ordered
// task list with zero-based ids, pending status, and no subtasks.
func ExtractTasks(raw string) ([]model.StudyTask, error) {
	jsonStr := extractJSONBlock(stripCodeFences(raw))
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var envelope planEnvelope
	if err := json.Unmarshal([]byte(jsonStr), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if len(envelope.Plan) == 0 {
		return nil, fmt.Errorf("%w: empty plan", ErrInvalidOutput)
	}

	tasks := make([]model.StudyTask, 0, len(envelope.Plan))
	for i, rec := range envelope.Plan {
		if err := rec.validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidOutput, i, err)
		}
		tasks = append(tasks, model.StudyTask{
			ID:          i,
			Status:      model.TaskStatusPending,
			Day:         rec.Day,
			TimeSlot:    rec.TimeSlot,
			Subject:     rec.Subject,
			Topic:       rec.Topic,
			Task:        rec.Task,
			Description: rec.Description,
		})
	}
	return tasks, nil
}

func (r taskRecord) validate() error {
	for name, val := range map[string]string{
		"day":         r.Day,
		"timeSlot":    r.TimeSlot,
		"subject":     r.Subject,
		"topic":       r.Topic,
		"task":        r.Task,
		"description": r.Description,
	} {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("missing %s", name)
		}
	}
	return nil
}

func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractJSONBlock finds the first balanced { ... } block in the text.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
