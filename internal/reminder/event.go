package reminder

import (
	"fmt"
	"time"
)

// Event is one scheduled study reminder. Subject and Topic are captured at
// scheduling time; a fired event never reads back into plan state, which is
// what makes the cancellation race harmless (see Engine.CancelAll).
type Event struct {
	ID        string
	TaskID    int
	Subject   string
	Topic     string
	TriggerAt time.Time
}

// Title is the notification title shown when the event fires.
func (e Event) Title() string {
	return fmt.Sprintf("Time for %s!", e.Subject)
}

// Body is the notification body shown when the event fires.
func (e Event) Body() string {
	return fmt.Sprintf("Let's start: %s", e.Topic)
}
