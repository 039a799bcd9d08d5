package extract

import "regexp"

// Kept deliberately narrow: "merit lists" (plural) is a policy question,
// while "merit list for CS at FAST" is an ordinary threshold query.
var policyPattern = regexp.MustCompile(`(?i)\b(vacant seats?|vacancies|merit\s*lists|policy|how many lists?)\b`)

// IsPolicyQuestion reports whether the message asks about admission policy
// (vacant seats, number of merit lists) rather than a merit threshold.
func IsPolicyQuestion(message string) bool {
	return policyPattern.MatchString(message)
}
