package categorytest

// answerLoggedMsg is sent when the answer event write completes.
type answerLoggedMsg struct {
	Err error
}
