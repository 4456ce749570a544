package insight

import "strings"

// classifyRules map keyword hits to categories. Order is the priority order:
// the first rule with any matching keyword wins, so text mentioning both
// sleep and exercise always classifies as Sleep.
var classifyRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"sleep"}, CategorySleep},
	{[]string{"exercise", "activity"}, CategoryExercise},
	{[]string{"water", "hydration"}, CategoryHydration},
	{[]string{"mood", "emotional"}, CategoryMood},
	{[]string{"symptom", "pain"}, CategorySymptoms},
	{[]string{"medication", "medicine"}, CategoryMedication},
}

// Classify assigns a category to insight text by keyword containment.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
