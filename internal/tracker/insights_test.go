package tracker

import (
	"strings"
	"testing"

	"github.com/odaklab/adaptiq/internal/emotion"
	"github.com/odaklab/adaptiq/internal/quiz"
)

func TestInsightsUnknownStudent(t *testing.T) {
	tr := New(nil)
	if got := tr.Insights("ghost"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestInsightsFreshStudentReadsAsStruggling(t *testing.T) {
	// With no scores the overall average is zero, which lands in the
	// struggling band.
	tr := New(nil)
	tr.InitializePlayer("s1", 7)

	insights := tr.Insights("s1")
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want 1: %v", len(insights), insights)
	}
	if insights[0] != "Öğrenci zorlanıyor, daha basit sorularla motivasyonu artırın" {
		t.Errorf("unexpected hint: %q", insights[0])
	}
}

func TestInsightsMidBandStudentIsKnownButHintless(t *testing.T) {
	// Average in (0.4, 0.8) with neutral emotions triggers no rule:
	// the student is still known, so the result is empty, not nil.
	tr := New(nil)
	tr.InitializePlayer("s1", 7)
	recordRounds(tr, "s1", 3, emotion.Neutral, 3)

	insights := tr.Insights("s1")
	if insights == nil {
		t.Fatal("known student must not read as unknown")
	}
	if len(insights) != 0 {
		t.Errorf("got %v, want no hints for the mid band", insights)
	}
}

func TestInsightsHighPerformerOrderAndContent(t *testing.T) {
	tr := New(nil)
	tr.InitializePlayer("s1", 4)
	recordRounds(tr, "s1", 5, emotion.Happy, 3)

	insights := tr.Insights("s1")
	if len(insights) != 3 {
		t.Fatalf("got %d insights, want 3: %v", len(insights), insights)
	}
	if insights[0] != "Öğrenci çok başarılı, daha zor sorularla meydan okuyun" {
		t.Errorf("overall hint: %q", insights[0])
	}
	if !strings.HasPrefix(insights[1], "Güçlü olduğu konular: ") ||
		!strings.Contains(insights[1], string(quiz.GameNumber)) {
		t.Errorf("strengths hint: %q", insights[1])
	}
	if insights[2] != "Öğrenci mutlu ve motive, bu tempoyu koruyun" {
		t.Errorf("emotion hint: %q", insights[2])
	}
}

func TestInsightsStrugglingTopicsAndConfusion(t *testing.T) {
	tr := New(nil)
	tr.InitializePlayer("s1", 7)
	recordRounds(tr, "s1", 1, emotion.Confused, 3)

	insights := tr.Insights("s1")
	if len(insights) != 3 {
		t.Fatalf("got %d insights, want 3: %v", len(insights), insights)
	}
	if insights[0] != "Öğrenci zorlanıyor, daha basit sorularla motivasyonu artırın" {
		t.Errorf("overall hint: %q", insights[0])
	}
	if !strings.HasPrefix(insights[1], "Zorlandığı konular: ") {
		t.Errorf("struggling hint: %q", insights[1])
	}
	if insights[2] != "Öğrenci karışık görünüyor, açıklamaları basitleştirin" {
		t.Errorf("emotion hint: %q", insights[2])
	}
}
