package service

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"consensus-api/internal/domain"
)

const (
	synthesisSystemPrompt = "You are an expert at synthesizing and summarizing responses."
	noAnswer              = "No answer"
	noResponsesHTML       = "<p>No responses yet</p>"
)

// answerKey is the answers map key of the question at zero-based position i
func answerKey(i int) string {
	return fmt.Sprintf("q%d", i+1)
}

func answerText(answers map[string]interface{}, key string) (string, bool) {
	v, ok := answers[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// buildSynthesisPrompt lists the questions, then every response as Q/A pairs
func buildSynthesisPrompt(questions []string, responses []*domain.Response) string {
	var b strings.Builder
	b.WriteString("Please synthesize the following responses to the questions that were asked.\n\nQuestions:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	b.WriteString("\n--- Responses ---\n")
	for i, r := range responses {
		answers := r.AnswerMap()
		fmt.Fprintf(&b, "\nResponse %d:\n", i+1)
		for qi, q := range questions {
			text, ok := answerText(answers, answerKey(qi))
			if !ok {
				text = noAnswer
			}
			fmt.Fprintf(&b, "  - Q: %s\n    A: %s\n", q, text)
		}
	}
	b.WriteString("\n--- End of Responses ---\n\nNow, please provide a concise synthesis of all the answers.")
	return b.String()
}

// renderMarkdown converts a generated markdown reply to HTML. Raw HTML in the reply is not passed through.
func renderMarkdown(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// compileDigest renders every answer grouped under its question. Keys that match no
// question are listed at the end so nothing submitted is lost.
func compileDigest(questions []string, responses []*domain.Response) string {
	if len(responses) == 0 {
		return noResponsesHTML
	}

	decoded := make([]map[string]interface{}, len(responses))
	for i, r := range responses {
		decoded[i] = r.AnswerMap()
	}

	known := make(map[string]bool, len(questions))
	var b strings.Builder
	for qi, q := range questions {
		key := answerKey(qi)
		known[key] = true
		fmt.Fprintf(&b, "<h3>%d. %s</h3><ul>", qi+1, html.EscapeString(q))
		for _, answers := range decoded {
			text, ok := answerText(answers, key)
			if !ok || strings.TrimSpace(text) == "" {
				continue
			}
			fmt.Fprintf(&b, "<li>%s</li>", escapeMultiline(text))
		}
		b.WriteString("</ul>")
	}

	var extra []string
	for _, answers := range decoded {
		keys := make([]string, 0, len(answers))
		for k := range answers {
			if !known[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			text, ok := answerText(answers, k)
			if !ok {
				continue
			}
			extra = append(extra, fmt.Sprintf("<li><strong>%s</strong>: %s</li>", html.EscapeString(k), escapeMultiline(text)))
		}
	}
	if len(extra) > 0 {
		b.WriteString("<h3>Other answers</h3><ul>")
		b.WriteString(strings.Join(extra, ""))
		b.WriteString("</ul>")
	}
	return b.String()
}

func escapeMultiline(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br/>")
}
