package scanning

import (
	"encoding/json"
	"fmt"
	"strings"
)

// lineDetectionPrompt is the shared prompt used by all LLM providers for reading receipt lines
const lineDetectionPrompt = `You are a document text detection engine. Read every line of text in this receipt image from top to bottom, left to right.

Return ONLY a JSON array of strings, one element per detected line, in reading order. For example:
["Robinson Malls", "Caloocan City", "Manager", "Jane Doe"]

Important:
- Copy the text of each line exactly as printed, do not correct spelling or reformat numbers
- Keep labels and their values on separate elements when they are printed on separate lines
- Do not add field names, explanations or any other structure
- Do not include any text before or after the JSON array
- Do not use markdown code blocks`

// parseLinesJSON parses a JSON array of lines from a model response.
// Null elements are rejected so callers never see a missing line.
func parseLinesJSON(text string) ([]string, error) {
	text = stripCodeFence(text)

	startIdx := strings.Index(text, "[")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON array found in response")
	}
	endIdx := strings.LastIndex(text, "]")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON array in response")
	}
	text = text[startIdx : endIdx+1]

	var raw []*string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	lines := make([]string, 0, len(raw))
	for i, line := range raw {
		if line == nil {
			return nil, fmt.Errorf("line %d is null", i)
		}
		lines = append(lines, *line)
	}
	return lines, nil
}

// stripCodeFence removes a surrounding markdown code block if present
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
