package usecase

import (
	"strings"

	"sayyes-srv/internal/model"
	"sayyes-srv/pkg/util"
)

// Slot vocabularies. Scan order is declaration order, first hit wins.
var (
	styleVocabulary  = []string{"modern", "rustic", "boho", "bohemian", "classic", "elegant", "traditional", "contemporary", "vintage"}
	budgetVocabulary = []string{"small", "moderate", "large", "luxury", "affordable", "expensive"}
)

type extractRule struct {
	triggers []string
	apply    func(raw, lowered string, p *model.Preferences) bool
}

// Rule order fixes which slot wins when a message matches several triggers.
// At most one slot is captured per turn.
var collectingRules = []extractRule{
	{triggers: []string{"location", "where", "place"}, apply: extractLocation},
	{triggers: []string{"guest", "people", "attend"}, apply: extractGuestCount},
	{triggers: []string{"budget", "cost", "spend"}, apply: extractBudget},
	{triggers: []string{"food", "catering", "cuisine", "menu"}, apply: extractFood},
	{triggers: []string{"special", "request", "important"}, apply: extractSpecial},
}

// extract parses one message into a preference update. Best-effort and
// silent on miss: no match leaves the slot unset and returns false.
func extract(stage model.Stage, message string, p *model.Preferences) bool {
	raw := strings.TrimSpace(message)
	lowered := strings.ToLower(raw)

	switch stage {
	case model.StageInitial:
		return extractStyle(raw, lowered, p)
	case model.StageCollectingInfo:
		for _, rule := range collectingRules {
			if !containsAny(lowered, rule.triggers) {
				continue
			}
			if rule.apply(raw, lowered, p) {
				return true
			}
		}
	}
	return false
}

func extractStyle(_, lowered string, p *model.Preferences) bool {
	for _, style := range styleVocabulary {
		if strings.Contains(lowered, style) {
			p.Style = style
			return true
		}
	}
	return false
}

func extractLocation(_, lowered string, p *model.Preferences) bool {
	i := strings.Index(lowered, "in ")
	if i < 0 {
		return false
	}
	location := strings.TrimSpace(lowered[i+len("in "):])
	if location == "" {
		return false
	}
	p.Location = location
	return true
}

func extractGuestCount(_, lowered string, p *model.Preferences) bool {
	n, ok := util.FirstInt(lowered)
	if !ok {
		return false
	}
	p.GuestCount = n
	return true
}

func extractBudget(_, lowered string, p *model.Preferences) bool {
	for _, budget := range budgetVocabulary {
		if strings.Contains(lowered, budget) {
			p.Budget = budget
			return true
		}
	}
	return false
}

func extractFood(raw, _ string, p *model.Preferences) bool {
	p.FoodPreferences = raw
	return true
}

func extractSpecial(raw, _ string, p *model.Preferences) bool {
	p.SpecialRequests = raw
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
