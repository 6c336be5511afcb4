package scenario

import "strings"

// Token tables mapping localized action tokens to abstract action kinds.
// Adding a locale is a pure-data change; nothing outside this file knows
// which human language a source was written in.
var tokenLocales = map[string]map[string]ActionKind{
	"en": {
		"open":   ActionOpen,
		"click":  ActionClick,
		"type":   ActionType,
		"wait":   ActionWait,
		"select": ActionSelect,
	},
	"tr": {
		"aç":    ActionOpen,
		"tıkla": ActionClick,
		"yaz":   ActionType,
		"bekle": ActionWait,
		"seç":   ActionSelect,
	},
}

// ResolveAction maps a free-text action token to its Action variant. The
// token is case-folded first; all locale packs are consulted. Unrecognized
// tokens become ActionUnknown carrying the original text, and an empty
// token becomes ActionNone.
func ResolveAction(token string) Action {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Action{Kind: ActionNone}
	}

	folded := strings.ToLower(trimmed)
	for _, table := range tokenLocales {
		if kind, ok := table[folded]; ok {
			return Action{Kind: kind}
		}
	}

	return Action{Kind: ActionUnknown, Raw: trimmed}
}

// ResolveStrategy maps a free-text locator strategy to the abstract
// strategy set. Unknown strategies fall back to id.
func ResolveStrategy(raw string) Strategy {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "id", "":
		return StrategyID
	case "name":
		return StrategyName
	case "class":
		return StrategyClass
	case "css":
		return StrategyCSS
	case "xpath":
		return StrategyXPath
	case "link":
		return StrategyLink
	}
	return StrategyID
}

// ResolvePriority parses a priority cell. Both English and the original
// template's Turkish tokens are accepted; anything else defaults to medium.
func ResolvePriority(raw string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "yüksek":
		return PriorityHigh, true
	case "medium", "orta", "":
		return PriorityMedium, true
	case "low", "düşük":
		return PriorityLow, true
	}
	return PriorityMedium, false
}

// ResolveTestKind parses a test kind cell, defaulting to web.
func ResolveTestKind(raw string) (TestKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "web", "":
		return KindWeb, true
	case "mobile", "mobil":
		return KindMobile, true
	case "api":
		return KindAPI, true
	}
	return KindWeb, false
}
