package services

import "encoding/json"

const emptyObject = "{}"

// safeJSON returns the stored text as raw JSON, degrading empty or
// corrupted text to an empty object instead of failing the read.
func safeJSON(s string) json.RawMessage {
	if s == "" || !json.Valid([]byte(s)) {
		return json.RawMessage(emptyObject)
	}
	return json.RawMessage(s)
}

// jsonText serializes a caller-supplied blob for storage, defaulting to an
// empty object. The blob is opaque here; shape validation belongs to the UI.
func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return emptyObject
	}
	return string(raw)
}
