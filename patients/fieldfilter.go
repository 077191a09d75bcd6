package patients

import "github.com/dentalops/roster/store"

var generalInfoFilterFields = map[string]struct{}{
	"firstName": {},
	"lastName":  {},
	"dob":       {},
}

// FieldFilterClause builds the free-text restriction for a single field.
// Identity fields live on the general info document and the insurance field
// on the medical info document; any other name is matched against the
// patient document itself. The pattern is a case sensitive regex. Returns
// nil when no filter was requested.
func FieldFilterClause(field string, pattern string) store.Clause {
	if field == "" || pattern == "" {
		return nil
	}
	if _, ok := generalInfoFilterFields[field]; ok {
		return store.Regex{Field: "generalInfo." + field, Pattern: pattern}
	}
	if field == "insurance" {
		return store.Regex{Field: "medicalInfo.insurance", Pattern: pattern}
	}
	return store.Regex{Field: field, Pattern: pattern}
}
