package llm

import "testing"

func TestParseJSONResponse_DirectJSON(t *testing.T) {
	parsed := ParseJSONResponse(`{"contract_type": "Vendor Contract", "confidence": "high"}`)

	if parsed["contract_type"] != "Vendor Contract" {
		t.Errorf("expected Vendor Contract, got %v", parsed["contract_type"])
	}
	if _, hasError := parsed["error"]; hasError {
		t.Error("expected no error key for valid JSON")
	}
}

func TestParseJSONResponse_EmbeddedJSON(t *testing.T) {
	response := "Here is the analysis you asked for:\n```json\n" +
		`{"contract_type": "NDA", "reasoning": "mutual confidentiality obligations"}` +
		"\n```\nLet me know if you need more detail."

	parsed := ParseJSONResponse(response)

	if parsed["contract_type"] != "NDA" {
		t.Errorf("expected NDA from embedded JSON, got %v", parsed["contract_type"])
	}
}

func TestParseJSONResponse_MultilineObject(t *testing.T) {
	response := "Result:\n{\n  \"confidence\": \"low\",\n  \"reasoning\": \"short excerpt\"\n}"

	parsed := ParseJSONResponse(response)

	if parsed["confidence"] != "low" {
		t.Errorf("expected multiline object to parse, got %v", parsed)
	}
}

func TestParseJSONResponse_UnparseableDegrades(t *testing.T) {
	response := "I could not produce structured output, sorry."

	parsed := ParseJSONResponse(response)

	if parsed["error"] != "Failed to parse response" {
		t.Errorf("expected error payload, got %v", parsed)
	}
	if parsed["raw_response"] != response {
		t.Errorf("expected raw response preserved, got %v", parsed["raw_response"])
	}
}
