package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/brochure"
	"google.golang.org/genai"
)

const synthesizeSystemPrompt = "You are an assistant that analyzes the contents of several relevant pages from a company website " +
	"and creates a short brochure about the company for prospective customers, investors and recruits. Respond in markdown. " +
	"Include details of company culture, customers and careers/jobs if you have the information."

// Ensure Synthesizer implements brochure.Synthesizer at compile time.
var _ brochure.Synthesizer = (*Synthesizer)(nil)

// Synthesizer implements brochure.Synthesizer using Google Gemini.
type Synthesizer struct {
	client *genai.Client
	model  string
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(client *genai.Client, model string) *Synthesizer {
	return &Synthesizer{client: client, model: model}
}

// Synthesize submits the serialized corpus to the model and returns the
// brochure body in markdown.
func (s *Synthesizer) Synthesize(ctx context.Context, companyName, corpus string) (string, error) {
	if companyName == "" {
		return "", brochure.Errorf(brochure.EINVALID, "company name required")
	}
	if corpus == "" {
		return "", brochure.Errorf(brochure.EINVALID, "corpus required")
	}

	prompt := BuildSynthesizePrompt(companyName, corpus)
	config := BuildSynthesizeConfig()

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

// BuildSynthesizeConfig returns the GenerateContentConfig for the
// synthesis call.
func BuildSynthesizeConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: synthesizeSystemPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildSynthesizePrompt builds the user prompt containing the company
// name and the serialized corpus.
func BuildSynthesizePrompt(companyName, corpus string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are looking at a company called: %s\n", companyName)
	sb.WriteString("Here are the contents of its landing page and other relevant pages; ")
	sb.WriteString("use this information to build a short brochure of the company in markdown.\n")
	sb.WriteString(corpus)
	return sb.String()
}
