package usecase

import (
	"sort"
)

// ChecklistSatisfied reports whether every campaign requirement is confirmed
// in the checklist. A missing key counts as unmet.
func ChecklistSatisfied(requirements []string, checklist map[string]bool) bool {
	return len(UnmetRequirements(requirements, checklist)) == 0
}

// UnmetRequirements returns the campaign requirements not confirmed in the
// checklist, in the campaign's requirement order.
func UnmetRequirements(requirements []string, checklist map[string]bool) []string {
	var unmet []string
	for _, req := range requirements {
		if !checklist[req] {
			unmet = append(unmet, req)
		}
	}
	return unmet
}

// ChecklistWellFormed reports whether the checklist key set equals the
// campaign requirement set exactly. Enforced whenever a checklist is attached
// to a participation.
func ChecklistWellFormed(requirements []string, checklist map[string]bool) bool {
	if len(checklist) != len(requirements) {
		return false
	}
	for _, req := range requirements {
		if _, ok := checklist[req]; !ok {
			return false
		}
	}
	return true
}

// ChecklistKeys returns the checklist keys sorted, used by logging and tests
func ChecklistKeys(checklist map[string]bool) []string {
	keys := make([]string, 0, len(checklist))
	for k := range checklist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
