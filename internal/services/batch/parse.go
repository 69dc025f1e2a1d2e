package batch

import (
	"encoding/json"
	"strings"

	"FormPull/internal/domain/models"
)

type picksEnvelope struct {
	Picks []models.Pick `json:"picks"`
}

// ParsePicks extracts the pick list from a raw analyzer response. The
// analyzer is asked for bare JSON but in practice may wrap it in a
// markdown fence or truncate mid-list, so parsing is tolerant: fences are
// stripped, truncated output is trimmed back to the last complete list
// element, and anything unrecoverable yields zero picks for the batch
// rather than an error. Better no picks than wrong picks.
func ParsePicks(raw string) []models.Pick {
	raw = stripFence(strings.TrimSpace(raw))

	var env picksEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil {
		return env.Picks
	}
	return recoverTruncated(raw)
}

// stripFence removes a surrounding markdown code fence, with or without a
// "json" language tag.
func stripFence(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	parts := strings.Split(raw, "```")
	if len(parts) > 1 {
		raw = parts[1]
	}
	raw = strings.TrimPrefix(raw, "json")
	return strings.TrimSpace(raw)
}

// recoverTruncated trims a cut-off response back to the last complete pick
// object and closes the envelope. This is best effort by design; if the
// result still does not parse the batch contributes zero picks.
func recoverTruncated(raw string) []models.Pick {
	cut := strings.LastIndex(raw, "},")
	if cut == -1 {
		cut = strings.LastIndex(raw, "}")
	}
	if cut <= 0 {
		return nil
	}

	candidate := raw[:cut+1] + "]}"
	var env picksEnvelope
	if err := json.Unmarshal([]byte(candidate), &env); err != nil {
		return nil
	}
	return env.Picks
}
