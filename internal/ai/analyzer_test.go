package ai

import (
	"context"
	"reflect"
	"testing"
)

func TestDemoAnalyzer(t *testing.T) {
	analyzer := NewDemoAnalyzer()

	result, err := analyzer.AnalyzeDiploma(context.Background(), "/tmp/does-not-matter.pdf", DiplomaMeta{Topic: "Тема"})
	if err != nil {
		t.Fatalf("AnalyzeDiploma() error: %v", err)
	}

	if result.FormatCheck.Score != 85 {
		t.Errorf("format score = %d, expected 85", result.FormatCheck.Score)
	}
	if !reflect.DeepEqual(result.FormatCheck.Issues, []string{"ИИ-анализ в разработке"}) {
		t.Errorf("unexpected issues: %v", result.FormatCheck.Issues)
	}
	if result.Review.Grade != "хорошо" {
		t.Errorf("review grade = %q, expected %q", result.Review.Grade, "хорошо")
	}

	expectedTypes := []string{"theory", "methodology", "practical"}
	if len(result.Questions) != len(expectedTypes) {
		t.Fatalf("expected %d questions, got %d", len(expectedTypes), len(result.Questions))
	}
	for i, q := range result.Questions {
		if q.Type != expectedTypes[i] {
			t.Errorf("question %d type = %q, expected %q", i, q.Type, expectedTypes[i])
		}
		if q.Text == "" {
			t.Errorf("question %d has empty text", i)
		}
	}

	if result.Provider != "demo" {
		t.Errorf("provider = %q, expected %q", result.Provider, "demo")
	}
}
