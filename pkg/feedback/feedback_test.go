package feedback

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluate_SelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"allow", "apple", "sissy", "a"} {
		fb, err := Evaluate(w, w)
		if err != nil {
			t.Fatalf("Evaluate(%q, %q): %v", w, w, err)
		}
		if !fb.AllCorrect() {
			t.Errorf("Evaluate(%q, %q) = %s, want all correct", w, w, fb)
		}
	}
}

func TestEvaluate_Marks(t *testing.T) {
	tests := []struct {
		answer, guess, want string
	}{
		{"allow", "alloy", "GGGG-"},
		{"allow", "world", "YY-Y-"},
		{"allow", "allow", "GGGGG"},
		// guess repeats letters beyond the answer's multiplicity
		{"angel", "llama", "Y-Y--"},
		{"abide", "sissy", "-Y---"},
		{"sissy", "sassy", "G-GGG"},
		{"ALLOW", "alloy", "GGGG-"}, // case-insensitive
	}
	for _, tt := range tests {
		fb, err := Evaluate(tt.answer, tt.guess)
		if err != nil {
			t.Fatalf("Evaluate(%q, %q): %v", tt.answer, tt.guess, err)
		}
		if fb.String() != tt.want {
			t.Errorf("Evaluate(%q, %q) = %s, want %s", tt.answer, tt.guess, fb, tt.want)
		}
	}
}

func TestEvaluate_NeverOverCredits(t *testing.T) {
	// Total Correct+Present for a letter never exceeds its multiplicity in
	// the answer.
	answer, guess := "allow", "lllll"
	fb, err := Evaluate(answer, guess)
	if err != nil {
		t.Fatal(err)
	}
	credited := 0
	for _, m := range fb {
		if m != Absent {
			credited++
		}
	}
	if credited != 2 {
		t.Errorf("credited %d marks for l, want 2 (answer multiplicity): %s", credited, fb)
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	if _, err := Evaluate("allow", "all"); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Evaluate length mismatch: got %v, want ErrLengthMismatch", err)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	fb, err := Evaluate("allow", "world")
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(fb.String())
	if err != nil {
		t.Fatalf("Parse(%q): %v", fb.String(), err)
	}
	if diff := cmp.Diff(fb, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidSymbol(t *testing.T) {
	if _, err := Parse("GX-"); err == nil {
		t.Error("Parse(GX-) succeeded, want error")
	}
}

func TestFeedback_Equal(t *testing.T) {
	a := Feedback{Correct, Present, Absent}
	b := Feedback{Correct, Present, Absent}
	c := Feedback{Correct, Present, Present}
	if !a.Equal(b) {
		t.Error("identical feedbacks not equal")
	}
	if a.Equal(c) {
		t.Error("different feedbacks reported equal")
	}
	if a.Equal(a[:2]) {
		t.Error("different lengths reported equal")
	}
}
