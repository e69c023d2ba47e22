// Package gemini provides Google Gemini implementations of the LLM-backed
// services: link classification, brochure synthesis, page summarization,
// and token counting.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/brochure"
	"google.golang.org/genai"
)

// classifySystemPrompt fixes the classifier's role. The output shape is
// enforced separately through the response schema.
const classifySystemPrompt = "You are provided with a list of links found on a webpage. " +
	"You are able to decide which of the links would be most relevant to include in a brochure about the company, " +
	"such as links to an About page, or a Company page, or Careers/Jobs pages. " +
	"Do not include Terms of Service, Privacy, or email links. " +
	"Respond in JSON with a single \"links\" key holding an array of {\"type\", \"url\"} records, " +
	"where each url is the full absolute URL."

// Ensure Classifier implements brochure.LinkClassifier at compile time.
var _ brochure.LinkClassifier = (*Classifier)(nil)

// Classifier implements brochure.LinkClassifier using Google Gemini.
// The model response is treated as untrusted input: it is parsed against
// a declared JSON schema and every URL is checked against the page's own
// link set before it is returned.
type Classifier struct {
	client      *genai.Client
	model       string
	maxLinks    int
	retryDelays []time.Duration
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithMaxLinks sets the selection cap. Defaults to brochure.DefaultMaxLinks.
func WithMaxLinks(n int) ClassifierOption {
	return func(c *Classifier) {
		c.maxLinks = n
	}
}

// WithRetryDelays sets the backoff delays for retrying a failed model
// call with unchanged input. The default is a single 1s retry.
func WithRetryDelays(delays []time.Duration) ClassifierOption {
	return func(c *Classifier) {
		c.retryDelays = delays
	}
}

// NewClassifier creates a new Classifier.
func NewClassifier(client *genai.Client, model string, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		client:      client,
		model:       model,
		maxLinks:    brochure.DefaultMaxLinks,
		retryDelays: []time.Duration{time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify sends the page's links to the model and returns the validated
// selection. Raw links are resolved and deduplicated before the call so
// duplicate hrefs don't waste model context.
func (c *Classifier) Classify(ctx context.Context, seedURL string, rawLinks []string) (brochure.LinkSelection, error) {
	if seedURL == "" {
		return nil, brochure.Errorf(brochure.EINVALID, "seed URL required")
	}

	resolved := brochure.ResolveLinks(seedURL, rawLinks)
	if len(resolved) == 0 {
		return nil, nil
	}

	prompt := BuildClassifyPrompt(seedURL, resolved)
	config := BuildClassifyConfig()

	var text string
	var err error
	for attempt := 0; ; attempt++ {
		text, err = c.generate(ctx, prompt, config)
		if err == nil || attempt >= len(c.retryDelays) {
			break
		}
		select {
		case <-ctx.Done():
			return nil, brochure.Errorf(brochure.ENETWORK, "classification canceled: %v", ctx.Err())
		case <-time.After(c.retryDelays[attempt]):
		}
	}
	if err != nil {
		return nil, err
	}

	return ParseSelection(text, seedURL, resolved, c.maxLinks)
}

func (c *Classifier) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model,
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

// BuildClassifyConfig returns the GenerateContentConfig for the
// classification call, including the machine-parseable output schema.
func BuildClassifyConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: classifySystemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"links": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"type": {Type: genai.TypeString},
							"url":  {Type: genai.TypeString},
						},
						Required: []string{"type", "url"},
					},
				},
			},
			Required: []string{"links"},
		},
	}
}

// BuildClassifyPrompt builds the user prompt containing the candidate links.
func BuildClassifyPrompt(seedURL string, links []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here is the list of links on the website %s - ", seedURL)
	sb.WriteString("please decide which of these are relevant web links for a brochure about the company.\n")
	sb.WriteString("Links:\n")
	sb.WriteString(strings.Join(links, "\n"))
	return sb.String()
}

// ParseSelection parses and validates a classification response.
// Returns ESCHEMA if the response does not match the declared schema.
// Entries whose URL was absent from the page's resolved link set and does
// not share the seed's host are dropped silently; the result is capped
// preserving the model's order.
func ParseSelection(raw, seedURL string, resolved []string, maxLinks int) (brochure.LinkSelection, error) {
	var payload struct {
		Links []brochure.ClassifiedLink `json:"links"`
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(&payload); err != nil {
		return nil, brochure.Errorf(brochure.ESCHEMA, "classification response is not valid JSON: %v", err)
	}
	if payload.Links == nil {
		return nil, brochure.Errorf(brochure.ESCHEMA, "classification response missing \"links\" key")
	}

	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, brochure.Errorf(brochure.EINVALID, "invalid seed URL %q", seedURL)
	}

	allowed := make(map[string]struct{}, len(resolved))
	for _, u := range resolved {
		allowed[u] = struct{}{}
	}

	var selection brochure.LinkSelection
	for _, link := range payload.Links {
		if !acceptLink(link, seed, allowed) {
			continue
		}
		selection = append(selection, link)
	}

	return selection.Cap(maxLinks), nil
}

// acceptLink rejects hallucinated, self-referential, and malformed URLs.
func acceptLink(link brochure.ClassifiedLink, seed *url.URL, allowed map[string]struct{}) bool {
	if link.URL == "" || link.URL == "/" || link.Category == "" {
		return false
	}

	u, err := url.Parse(link.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	stripped := *u
	stripped.Fragment = ""
	seedNoFragment := *seed
	seedNoFragment.Fragment = ""
	if stripped.String() == seedNoFragment.String() {
		return false
	}

	if _, ok := allowed[stripped.String()]; ok {
		return true
	}

	// Not in the harvested set: accept only if it resolves to the seed's
	// host, which covers models returning cleaned-up variants of real links.
	return u.Host == seed.Host
}
