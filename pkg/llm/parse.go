package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSONObject unmarshals a model response into v. Models wrap JSON in
// markdown fences or prose often enough that three attempts are made:
//
//  1. the raw response as-is
//  2. the contents of a ```json fenced block
//  3. the substring between the first '{' and the last '}'
//
// An error means the response carried no parseable JSON object; callers
// treat that as a model failure, not a transport failure.
func ParseJSONObject(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty response")
	}

	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	if fenced, ok := extractFenced(raw); ok {
		if err := json.Unmarshal([]byte(fenced), v); err == nil {
			return nil
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), v); err == nil {
			return nil
		}
	}

	return fmt.Errorf("response contains no parseable JSON object")
}

// extractFenced returns the body of the first ``` fenced block, tolerating
// an optional language tag after the opening fence.
func extractFenced(raw string) (string, bool) {
	open := strings.Index(raw, "```")
	if open < 0 {
		return "", false
	}
	rest := raw[open+3:]
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		rest = rest[nl+1:]
	}
	close := strings.Index(rest, "```")
	if close < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:close]), true
}
