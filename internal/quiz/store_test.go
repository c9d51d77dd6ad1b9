package quiz

import (
	"testing"

	"github.com/openmcq/openmcq/internal/question"
)

func TestSelectOption_LastWriteWins(t *testing.T) {
	store := NewStore()

	store.SelectOption("Networking-0", "A")
	store.SelectOption("Networking-0", "B")
	store.SelectOption("Networking-0", "C")

	ans := store.Snapshot().Answers["Networking-0"]
	if ans.Answered {
		t.Error("expected Answered to stay false before submission")
	}
	if ans.Selected != "C" {
		t.Errorf("Selected = %q, want C", ans.Selected)
	}
}

func TestSelectOption_FrozenAfterAnswer(t *testing.T) {
	store := NewStore()
	store.PutAnswer("k", AnswerState{Answered: true, Correct: true, Selected: "A"})

	store.SelectOption("k", "B")

	if got := store.Snapshot().Answers["k"].Selected; got != "A" {
		t.Errorf("Selected = %q, want A (frozen)", got)
	}
}

func TestPutAnswer_FirstSubmissionWins(t *testing.T) {
	store := NewStore()

	store.PutAnswer("k", AnswerState{Answered: true, Correct: true, Selected: "A"})
	store.PutAnswer("k", AnswerState{Answered: true, Correct: false, Selected: "B"})

	ans := store.Snapshot().Answers["k"]
	if !ans.Answered || !ans.Correct || ans.Selected != "A" {
		t.Errorf("answer mutated after first submission: %+v", ans)
	}
}

func TestUpdateExam_NoExamIsNoop(t *testing.T) {
	store := NewStore()

	called := false
	store.UpdateExam(func(*ExamSession) { called = true })

	if called {
		t.Error("patch applied with no exam present")
	}
}

func TestSetTestSet_DrawnOncePerSession(t *testing.T) {
	store := NewStore()

	store.SetTestSet("A", []string{"q1", "q2", "q3"})
	store.SetTestSet("A", []string{"q9"})

	ids := store.Snapshot().TestSets["A"]
	if len(ids) != 3 || ids[0] != "q1" {
		t.Errorf("TestSets[A] = %v, want original 3-element draw", ids)
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	store := NewStore()
	store.PutAnswer("k", AnswerState{Answered: true})
	store.SetScore("A", CategoryScore{TotalAnswered: 1, WrongQuestionIDs: []string{"q1"}})
	store.SetExam(&ExamSession{Questions: []question.Record{{ID: "x"}}, Flagged: []int{2}})

	snap := store.Snapshot()
	snap.Answers["k"] = AnswerState{}
	snap.Scores["A"] = CategoryScore{}
	snap.Exam.Flagged[0] = 99
	snap.Exam.Questions[0].ID = "mutated"

	fresh := store.Snapshot()
	if !fresh.Answers["k"].Answered {
		t.Error("snapshot mutation leaked into store answers")
	}
	if fresh.Scores["A"].TotalAnswered != 1 {
		t.Error("snapshot mutation leaked into store scores")
	}
	if fresh.Exam.Flagged[0] != 2 || fresh.Exam.Questions[0].ID != "x" {
		t.Error("snapshot mutation leaked into store exam")
	}
}

func TestSubscribe_NotifiedAfterMutation(t *testing.T) {
	store := NewStore()

	var got []Mode
	store.Subscribe(func(s State) { got = append(got, s.Mode) })

	store.SetMode(ModePractice)
	store.SetMode(ModeExam)

	if len(got) != 2 || got[0] != ModePractice || got[1] != ModeExam {
		t.Errorf("listener saw %v, want [practice exam]", got)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	store := NewStore()
	store.SetMode(ModeCategoryTest)
	store.SetCategory("A")
	store.PutAnswer("A-0", AnswerState{Answered: true})
	store.SetTestSet("A", []string{"q1"})
	store.SetExam(&ExamSession{})

	store.Reset()

	state := store.Snapshot()
	if state.Mode != ModeNone || state.SelectedCategory != "" || state.Exam != nil {
		t.Errorf("state not empty after reset: %+v", state)
	}
	if len(state.Answers) != 0 || len(state.TestSets) != 0 {
		t.Error("ledgers not cleared after reset")
	}
	if state.QuestionIndex != "0" {
		t.Errorf("QuestionIndex = %q, want 0", state.QuestionIndex)
	}
}

func TestIndex_Clamping(t *testing.T) {
	tests := []struct {
		index  string
		length int
		want   int
	}{
		{"0", 5, 0},
		{"4", 5, 4},
		{"7", 5, 4},
		{"-2", 5, 0},
		{"garbage", 5, 0},
		{"3", 0, 0},
	}
	for _, tt := range tests {
		st := State{QuestionIndex: tt.index}
		if got := st.Index(tt.length); got != tt.want {
			t.Errorf("Index(%q, len %d) = %d, want %d", tt.index, tt.length, got, tt.want)
		}
	}
}
