package domain

// Closed vocabularies for the AI classification. The narrative service must
// answer using these tags only; anything else is rejected.

var PlaystyleTypes = []string{
	"AGGRESSIVE",
	"DEFENSIVE",
	"BALANCED",
	"FARMER",
	"OBJECTIVE_FOCUSED",
	"TEAM_ORIENTED",
	"SPLIT_PUSHER",
	"OPPORTUNIST",
	"CONTROL",
	"CHAOTIC",
}

var GameplayElementTypes = []string{
	"VISION",
	"KILLER",
	"FARMER",
	"OBJECTIVES",
	"TEAMPLAY",
	"MAP_PRESSURE",
	"SURVIVABILITY",
}

var (
	playstyleSet       = toSet(PlaystyleTypes)
	gameplayElementSet = toSet(GameplayElementTypes)
)

func toSet(keys []string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func ValidPlaystyle(t string) bool {
	_, ok := playstyleSet[t]
	return ok
}

func ValidGameplayElement(t string) bool {
	_, ok := gameplayElementSet[t]
	return ok
}

// Advice may reference either vocabulary.
func ValidAdviceType(t string) bool {
	return ValidPlaystyle(t) || ValidGameplayElement(t)
}
