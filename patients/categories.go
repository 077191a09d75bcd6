package patients

import (
	"fmt"
	"time"

	"github.com/dentalops/roster/errors"
	"github.com/dentalops/roster/store"
)

// FilterCategory names one of the roster views. Exactly one view applies
// per request; the empty category lists the whole roster.
type FilterCategory string

const (
	CategoryNewToRoster    FilterCategory = "new_to_roster"
	CategoryNoVisit        FilterCategory = "no_visit"
	CategoryUnscheduled    FilterCategory = "unscheduled"
	CategoryOverdue        FilterCategory = "overdue"
	CategoryInactive       FilterCategory = "inactive"
	CategoryNoShow         FilterCategory = "no show'd"
	CategoryScheduledToday FilterCategory = "scheduled_today"
	CategoryMultiPractice  FilterCategory = "existing_in_another_practices"
)

// Contact statuses that take a patient off the working roster. Only the
// uncategorized view excludes them; the named views intentionally do not.
var closedContactStatuses = []string{
	"Do Not Contact",
	"Changed Dentists",
	"Moved Away",
	"Placed on Books!",
	"Already Scheduled",
}

func excludeClosedContactStatuses() store.Clause {
	clauses := make(store.And, 0, len(closedContactStatuses))
	for _, status := range closedContactStatuses {
		clauses = append(clauses, store.Not{
			Clause: store.Regex{Field: "contactStatus", Pattern: status, CaseInsensitive: true},
		})
	}
	return clauses
}

// eligibleForRosterReview selects patients the roster review views apply
// to: managed-care patients plus anyone scraped from a portal other than
// dentaquest or mcna.
func eligibleForRosterReview() store.Clause {
	return store.Or{
		store.Compare{Field: "generalInfo.mcoStatus", Operator: store.OperatorEqual, Value: true},
		store.And{
			store.Compare{Field: "website", Operator: store.OperatorNotEqual, Value: WebsiteDentaQuest},
			store.Compare{Field: "website", Operator: store.OperatorNotEqual, Value: WebsiteMCNA},
		},
	}
}

// CategoryClause builds the selector for a roster view. The cutoffs are
// derived from now on every call.
func CategoryClause(category FilterCategory, now time.Time) (store.Clause, error) {
	windows := WindowsAt(now)

	switch category {
	case "":
		return excludeClosedContactStatuses(), nil

	case CategoryNewToRoster:
		return store.And{
			store.Compare{Field: "generalInfo.subscriberId", Operator: store.OperatorNotEqual, Value: nil},
			store.Or{
				store.Compare{Field: "generalInfo.mcoStatus", Operator: store.OperatorEqual, Value: false},
				store.Compare{Field: "generalInfo.mcoStatus", Operator: store.OperatorEqual, Value: nil},
			},
			store.Compare{Field: "insertDate", Operator: store.OperatorGreaterThan, Value: windows.Past60},
		}, nil

	case CategoryNoVisit:
		return store.And{
			eligibleForRosterReview(),
			store.Compare{Field: "lastServiceDate", Operator: store.OperatorEqual, Value: nil},
			store.Compare{Field: "pdbInfo.lastServiceDatePdb", Operator: store.OperatorEqual, Value: nil},
			store.Compare{Field: "pdbInfo.lastProphylaxisDatePdb", Operator: store.OperatorEqual, Value: nil},
		}, nil

	case CategoryUnscheduled:
		return store.And{
			eligibleForRosterReview(),
			store.Compare{Field: "pdbInfo.txPlanned", Operator: store.OperatorGreaterThan, Value: 0},
			store.Compare{Field: "nextService", Operator: store.OperatorEqual, Value: nil},
		}, nil

	case CategoryOverdue:
		return store.And{
			eligibleForRosterReview(),
			store.Or{
				store.And{
					store.Compare{Field: "pdbInfo.lastServiceDatePdb", Operator: store.OperatorGreaterThan, Value: windows.Past365},
					store.Compare{Field: "pdbInfo.lastServiceDatePdb", Operator: store.OperatorLessThan, Value: windows.Past180},
					store.Compare{Field: "lastServiceDate", Operator: store.OperatorLessThan, Value: windows.Past180},
				},
				store.And{
					store.Compare{Field: "lastServiceDate", Operator: store.OperatorGreaterThan, Value: windows.Past365},
					store.Compare{Field: "lastServiceDate", Operator: store.OperatorLessThan, Value: windows.Past180},
					store.Compare{Field: "pdbInfo.lastServiceDatePdb", Operator: store.OperatorLessThan, Value: windows.Past180},
				},
			},
		}, nil

	case CategoryInactive:
		return store.And{
			eligibleForRosterReview(),
			store.Compare{Field: "nextService", Operator: store.OperatorEqual, Value: nil},
			store.Or{
				store.Compare{Field: "lastServiceDate", Operator: store.OperatorLessThan, Value: windows.Past365},
				store.Compare{Field: "pdbInfo.lastServiceDatePdb", Operator: store.OperatorLessThan, Value: windows.Past365},
			},
			store.Or{
				store.Compare{Field: "pdbInfo.lastProphylaxisDatePdb", Operator: store.OperatorNotEqual, Value: nil},
				store.Compare{Field: "pdbInfo.lastServiceDatePdb", Operator: store.OperatorNotEqual, Value: nil},
			},
		}, nil

	case CategoryNoShow:
		return store.And{
			store.Compare{Field: "generalInfo.mcoStatus", Operator: store.OperatorEqual, Value: true},
			store.Compare{Field: "nextService", Operator: store.OperatorLessThan, Value: now},
			store.CompareFields{Left: "nextService", Operator: store.OperatorGreaterThan, Right: "lastTouch"},
		}, nil

	case CategoryScheduledToday:
		// TODO: confirm these bounds with scheduling; [tomorrow, now] is an
		// inverted range that matches nothing, kept for parity with the
		// currently deployed behavior.
		return store.Between{
			Field: "nextService",
			Low:   now.AddDate(0, 0, 1),
			High:  now,
		}, nil

	case CategoryMultiPractice:
		return store.Compare{Field: "generalInfo.multiPractice", Operator: store.OperatorEqual, Value: true}, nil

	default:
		return nil, fmt.Errorf("%w: unknown filter category %q", errors.BadRequest, category)
	}
}
