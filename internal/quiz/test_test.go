package quiz

import (
	"math/rand"
	"testing"
)

func testTestController(t *testing.T) (*Store, *CategoryTest) {
	t.Helper()
	store := NewStore()
	return store, NewCategoryTest(store, testRepo(), rand.New(rand.NewSource(7)))
}

func TestCategoryTest_SubsetSize(t *testing.T) {
	store, ct := testTestController(t)

	ct.Start("Databases", 5)

	questions := ct.Questions()
	if len(questions) != 5 {
		t.Fatalf("subset size = %d, want 5", len(questions))
	}
	if store.Snapshot().Mode != ModeCategoryTest {
		t.Error("mode not category-test after start")
	}
}

func TestCategoryTest_CountClamped(t *testing.T) {
	_, ct := testTestController(t)

	ct.Start("Networking", 99)
	if got := len(ct.Questions()); got != 3 {
		t.Errorf("subset size = %d, want all 3 when count exceeds category", got)
	}
}

func TestCategoryTest_ScoreInvariant(t *testing.T) {
	store, ct := testTestController(t)
	ct.Start("Databases", 4)

	answers := []string{"y", "w", "y", "z"} // mix of right and wrong
	for i, opt := range answers {
		ct.Submit(opt)
		score := ct.Score()
		if score.TotalAnswered != score.CorrectCount+len(score.WrongQuestionIDs) {
			t.Fatalf("after answer %d: total=%d correct=%d wrong=%d",
				i, score.TotalAnswered, score.CorrectCount, len(score.WrongQuestionIDs))
		}
		ct.Next()
	}

	score := ct.Score()
	if score.TotalAnswered != 4 || score.CorrectCount != 2 {
		t.Errorf("score = %+v, want 4 answered / 2 correct", score)
	}
	if score.AvailableQuestions != 4 {
		t.Errorf("AvailableQuestions = %d, want 4", score.AvailableQuestions)
	}
	_ = store
}

func TestCategoryTest_FinishIsUnconditional(t *testing.T) {
	store, ct := testTestController(t)
	ct.Start("Databases", 5)

	ct.Finish()

	if !store.Snapshot().ShowResults {
		t.Error("Finish did not show results with unanswered questions remaining")
	}
}

func TestCategoryTest_ReviewUsesSameSubset(t *testing.T) {
	store, ct := testTestController(t)
	ct.Start("Databases", 5)

	drawn := ct.Questions()
	drawnIDs := make(map[string]bool)
	for _, q := range drawn {
		drawnIDs[q.ID] = true
	}

	// Answer the first two wrong.
	ct.Submit("w")
	ct.Next()
	ct.Submit("w")
	ct.Finish()

	score := ct.Score()
	ct.ReviewWrongAnswers("Databases", score.WrongQuestionIDs)

	state := store.Snapshot()
	if state.Mode != ModeReview {
		t.Errorf("mode = %s, want review", state.Mode)
	}
	if state.ShowResults {
		t.Error("results still showing in review")
	}
	if state.QuestionIndex != "0" {
		t.Errorf("QuestionIndex = %q, want 0 (first wrong answer)", state.QuestionIndex)
	}

	reviewQuestions := ct.Questions()
	if len(reviewQuestions) != 5 {
		t.Fatalf("review subset size = %d, want the drawn 5, not the full 10", len(reviewQuestions))
	}
	for _, q := range reviewQuestions {
		if !drawnIDs[q.ID] {
			t.Errorf("review question %s was not part of the original draw", q.ID)
		}
	}
}

func TestCategoryTest_ReviewBlocksSubmission(t *testing.T) {
	store, ct := testTestController(t)
	ct.Start("Databases", 3)
	ct.Finish()
	ct.ReviewWrongAnswers("Databases", nil)

	ct.Select("y")
	ct.Submit("y")

	state := store.Snapshot()
	if len(state.Answers) != 0 {
		t.Error("review mode accepted an answer")
	}
	if state.Scores["Databases"].TotalAnswered != 0 {
		t.Error("review mode changed the score ledger")
	}
}

func TestCategoryTest_SubmitKeysOffClampedIndex(t *testing.T) {
	store, ct := testTestController(t)

	ct.Start("Databases", 3)
	store.SetQuestionIndex("7")

	_, idx, ok := ct.Current()
	if !ok || idx != 2 {
		t.Fatalf("Current() index = %d, want clamped 2", idx)
	}

	ct.Submit("y")

	state := store.Snapshot()
	if ans := state.Answers[Key("Databases", "2")]; !ans.Answered {
		t.Error("answer not recorded under the clamped key")
	}
	if ans := state.Answers[Key("Databases", "7")]; ans.Answered {
		t.Error("answer recorded under the raw out-of-range key")
	}
	if score := ct.Score(); score.TotalAnswered != 1 || score.CorrectCount != 1 {
		t.Errorf("score = %+v, want one correct answer", score)
	}
}

func TestCategoryTest_RestartResets(t *testing.T) {
	store, ct := testTestController(t)
	ct.Start("Databases", 3)
	ct.Submit("y")

	ct.Restart()

	state := store.Snapshot()
	if state.Mode != ModeNone || len(state.Answers) != 0 || len(state.TestSets) != 0 {
		t.Errorf("restart left residual state: %+v", state)
	}
}
