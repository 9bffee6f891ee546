package advisor

import "fmt"

// SuggestionSystemPrompt instructs the model to act as a dedup reviewer.
const SuggestionSystemPrompt = `You are a code-repository hygiene assistant. You are given two files with byte-identical (or whitespace-identical) content and must recommend which copy to KEEP. Judge only by path and metadata:
- prefer copies in canonical source locations over backup/old/copy/tmp/archive directories
- prefer the more recently modified copy when locations are equally canonical
- prefer shorter, cleaner paths

Respond with JSON only, no prose:
{"keep": "<path of the copy to keep>", "reason": "<one short sentence>", "confidence": <0-100>}`

// BuildSuggestionPrompt formats one duplicate pair for the model.
func BuildSuggestionPrompt(req *SuggestionRequest) string {
	return fmt.Sprintf(`Two duplicate files:

File A:
  path: %s
  size: %d bytes
  modified: %s

File B:
  path: %s
  size: %d bytes
  modified: %s

Which one should be kept?`,
		req.PathA, req.SizeA, req.ModTimeA,
		req.PathB, req.SizeB, req.ModTimeB)
}
