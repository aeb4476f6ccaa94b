package llm

import (
	"encoding/json"
	"regexp"
)

// jsonObject finds the outermost braces in free-form LLM output
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// ParseJSONResponse extracts a JSON object from an LLM response.
// It tries direct parsing first, then the outermost brace span. A parse
// failure degrades to an error payload carrying the original text - it
// never returns an error.
func ParseJSONResponse(response string) map[string]any {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(response), &parsed); err == nil {
		return parsed
	}

	if match := jsonObject.FindString(response); match != "" {
		if err := json.Unmarshal([]byte(match), &parsed); err == nil {
			return parsed
		}
	}

	return map[string]any{
		"error":        "Failed to parse response",
		"raw_response": response,
	}
}
