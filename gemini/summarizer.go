package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/brochure"
	"google.golang.org/genai"
)

const summarizeSystemPrompt = "You are an assistant that analyzes the contents of a website " +
	"and provides a short summary, ignoring text that might be navigation related. " +
	"Respond in markdown."

// Ensure Summarizer implements brochure.Summarizer at compile time.
var _ brochure.Summarizer = (*Summarizer)(nil)

// Summarizer implements brochure.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

// Summarize produces a short markdown summary of a single page.
func (s *Summarizer) Summarize(ctx context.Context, page *brochure.Page) (string, error) {
	if page == nil {
		return "", brochure.Errorf(brochure.EINVALID, "page required")
	}

	prompt := BuildSummarizePrompt(page)
	config := BuildSummarizeConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", brochure.Errorf(brochure.ENETWORK, "gemini call failed: %v", err)
	}
	if result == nil {
		return "", brochure.Errorf(brochure.EINTERNAL, "gemini returned nil result")
	}
	text := result.Text()
	if text == "" {
		return "", brochure.Errorf(brochure.EINTERNAL, "gemini returned empty completion")
	}

	return text, nil
}

// BuildSummarizeConfig returns the GenerateContentConfig for the
// summarization call.
func BuildSummarizeConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: summarizeSystemPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildSummarizePrompt builds the user prompt for a single-page summary.
func BuildSummarizePrompt(page *brochure.Page) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are looking at a website titled %s\n", page.Title)
	sb.WriteString("The contents of this website is as follows; please provide a short summary ")
	sb.WriteString("of this website in markdown. If it includes news or announcements, ")
	sb.WriteString("then summarize these too.\n\n")
	sb.WriteString(page.Text)
	return sb.String()
}
