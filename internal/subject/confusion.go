package subject

import "strings"

// confusionMarkers are the fixed phrases that flag a confused follow-up.
// Stored pre-folded; matched by substring containment.
var confusionMarkers = []string{
	"nao sei",
	"nao entendi",
	"nao entendo",
	"confuso",
	"confusa",
	"explica",
	"explique",
	"duvida",
	"don't know",
	"dont know",
	"confused",
	"explain",
}

// IsConfused reports whether the student's answer contains a confusion marker.
func IsConfused(answer string) bool {
	folded := Fold(answer)
	for _, m := range confusionMarkers {
		if strings.Contains(folded, m) {
			return true
		}
	}
	return false
}
