package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/creatorlens/creatorlens/internal/apperr"
	"github.com/creatorlens/creatorlens/internal/model"
)

var ideaTemplates = []string{
	"Why %[1]s is Broken (And How to Fix It)",
	"I Tried %[1]s for 7 Days - Here's What Happened",
	"The Ultimate Guide to %[1]s for Beginners",
	"Stop Doing %[1]s Like This! (Do This Instead)",
	"%[1]s Explained in 5 Minutes",
	"The Dark Truth About %[1]s nobody tells you",
	"10 %[1]s Hacks That Actually Work",
	"How %[2]s Mastered %[1]s",
	"Is %[1]s Worth It in 2024?",
	"My Secret %[1]s Strategy Revealed",
}

// IdeasService generates template-based content suggestions. It is a
// deterministic sampler, not a model call.
type IdeasService struct{}

func NewIdeasService() *IdeasService {
	return &IdeasService{}
}

// GenerateIdeas returns five video title ideas for a topic.
func (s *IdeasService) GenerateIdeas(topic, channelName string) ([]model.Idea, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperr.Validation("topic is required")
	}
	if channelName == "" {
		channelName = "top creators"
	}

	picks := rand.Perm(len(ideaTemplates))[:5]
	ideas := make([]model.Idea, 0, 5)
	for i, idx := range picks {
		ideas = append(ideas, model.Idea{
			ID:         i + 1,
			Title:      fmt.Sprintf(ideaTemplates[idx], topic, channelName),
			Confidence: 85 + rand.IntN(15),
		})
	}
	return ideas, nil
}

// GenerateScript returns a structured video script outline for a title.
func (s *IdeasService) GenerateScript(title, tone string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperr.Validation("title is required")
	}
	if tone == "" {
		tone = "casual"
	}

	hookWord := strings.SplitN(title, " ", 2)[0]
	var b strings.Builder
	fmt.Fprintf(&b, "# Video Script: %s\n", title)
	fmt.Fprintf(&b, "**Tone:** %s\n\n", strings.ToUpper(tone[:1])+tone[1:])
	fmt.Fprintf(&b, "## [0:00-0:30] The Hook\n(Face Camera, High Energy)\n")
	fmt.Fprintf(&b, "\"Have you ever wondered why %s seems so complicated? Well, today we're breaking it down once and for all.\"\n\n", hookWord)
	b.WriteString("## [0:30-1:30] The Problem\n")
	b.WriteString("\"Most people get stuck when they try to start. They think...\"\n")
	b.WriteString("(Cut to B-Roll of common mistakes)\n")
	b.WriteString("\"But here is the truth...\"\n\n")
	fmt.Fprintf(&b, "## [1:30-5:00] The Solution (%s Style)\n", tone)
	b.WriteString("1. **Step One:** The Foundation.\n")
	b.WriteString("2. **Step Two:** The Execution.\n")
	b.WriteString("   (Show screen recording or demonstration)\n")
	b.WriteString("3. **Step Three:** The Secret Sauce.\n\n")
	b.WriteString("## [5:00-6:00] Conclusion & CTA\n")
	b.WriteString("\"Now that you know the secret, go try it out! Don't forget to like and subscribe for more content.\"\n")
	return b.String(), nil
}
