package exam

import "time"

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// answerLoggedMsg is sent when the answer event write completes.
type answerLoggedMsg struct {
	Err error
}
