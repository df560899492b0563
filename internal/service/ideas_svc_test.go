package service

import (
	"strings"
	"testing"

	"github.com/creatorlens/creatorlens/internal/apperr"
)

func TestGenerateIdeas(t *testing.T) {
	svc := NewIdeasService()

	ideas, err := svc.GenerateIdeas("home coffee roasting", "Roast Corner")
	if err != nil {
		t.Fatalf("GenerateIdeas failed: %v", err)
	}
	if len(ideas) != 5 {
		t.Fatalf("got %d ideas, want 5", len(ideas))
	}

	seen := make(map[string]bool)
	for i, idea := range ideas {
		if idea.ID != i+1 {
			t.Errorf("idea %d has ID %d, want %d", i, idea.ID, i+1)
		}
		if !strings.Contains(idea.Title, "home coffee roasting") {
			t.Errorf("title %q does not mention the topic", idea.Title)
		}
		if idea.Confidence < 85 || idea.Confidence > 99 {
			t.Errorf("confidence = %d, want 85..99", idea.Confidence)
		}
		if seen[idea.Title] {
			t.Errorf("duplicate title %q", idea.Title)
		}
		seen[idea.Title] = true
	}
}

func TestGenerateIdeas_EmptyTopic(t *testing.T) {
	svc := NewIdeasService()

	_, err := svc.GenerateIdeas("   ", "")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("error = %v, want validation", err)
	}
}

func TestGenerateScript(t *testing.T) {
	svc := NewIdeasService()

	script, err := svc.GenerateScript("Mastering Sourdough", "energetic")
	if err != nil {
		t.Fatalf("GenerateScript failed: %v", err)
	}
	if !strings.Contains(script, "# Video Script: Mastering Sourdough") {
		t.Error("script missing title heading")
	}
	if !strings.Contains(script, "**Tone:** Energetic") {
		t.Error("script missing capitalized tone line")
	}
	if !strings.Contains(script, "The Hook") || !strings.Contains(script, "Conclusion & CTA") {
		t.Error("script missing section structure")
	}
}

func TestGenerateScript_Defaults(t *testing.T) {
	svc := NewIdeasService()

	script, err := svc.GenerateScript("Anything", "")
	if err != nil {
		t.Fatalf("GenerateScript failed: %v", err)
	}
	if !strings.Contains(script, "**Tone:** Casual") {
		t.Error("empty tone should default to casual")
	}

	if _, err := svc.GenerateScript("", "casual"); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("empty title: error = %v, want validation", err)
	}
}
