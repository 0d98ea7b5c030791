// Package quiz implements the fixed-question trivia engine.
//
// The question set is a compile-time constant: five culinary questions, each
// with one canonical answer. Scoring is a pure function over the submitted
// answers (case-insensitive, whitespace-trimmed exact match); nothing is
// persisted between attempts. A percentage of 80 or higher passes and makes
// the caller eligible for a certificate artifact.
package quiz

import "strings"

// PassPercentage is the minimum score that counts as a pass.
const PassPercentage = 80.0

// Question pairs a prompt with its canonical answer. The answer is never
// serialized in API responses.
type Question struct {
	Prompt string `json:"prompt"`
	answer string
}

// questions is the fixed set, in presentation order.
var questions = []Question{
	{Prompt: "What is the main ingredient in guacamole?", answer: "Avocado"},
	{Prompt: "Which herb is commonly used in Italian cuisine?", answer: "Basil"},
	{Prompt: "What type of pasta is shaped like small rice grains?", answer: "Orzo"},
	{Prompt: "What is traditionally used to make hummus?", answer: "Chickpeas"},
	{Prompt: "Which fruit is known as the king of fruits?", answer: "Durian"},
}

// Questions returns the prompts in presentation order.
func Questions() []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.Prompt
	}
	return out
}

// Result is the outcome of scoring one attempt.
type Result struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Passed     bool    `json:"passed"`
}

// Score grades answers positionally against the fixed question set. Answers
// beyond the question count are ignored; missing answers count as wrong.
// Matching trims surrounding whitespace and ignores case.
func Score(answers []string) Result {
	correct := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if strings.EqualFold(strings.TrimSpace(answers[i]), q.answer) {
			correct++
		}
	}

	total := len(questions)
	pct := float64(correct) / float64(total) * 100
	return Result{
		Correct:    correct,
		Total:      total,
		Percentage: pct,
		Passed:     pct >= PassPercentage,
	}
}
