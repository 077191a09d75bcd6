package patients

import "github.com/dentalops/roster/store"

const (
	sortAscending  = "1"
	sortDescending = "-1"
)

// ResolveSort maps a sort key to the document path of the entity that owns
// it. An empty or unrecognized order yields no explicit sort.
func ResolveSort(sortBy string, order string) *store.Sort {
	if sortBy == "" {
		return nil
	}

	var ascending bool
	switch order {
	case sortAscending:
		ascending = true
	case sortDescending:
		ascending = false
	default:
		return nil
	}

	var attribute string
	switch sortBy {
	case "firstName", "lastName", "dob":
		attribute = "generalInfo." + sortBy
	case "insurance":
		attribute = "medicalInfo.insurance"
	case "lastServiceDatePdb", "totalVisits":
		attribute = "pdbInfo." + sortBy
	default:
		attribute = sortBy
	}

	return &store.Sort{Attribute: attribute, Ascending: ascending}
}
