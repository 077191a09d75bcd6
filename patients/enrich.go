package patients

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/sync/errgroup"
)

const enrichmentConcurrency = 10

// enrich attaches the nearest pending follow-up to every record on the
// page. Lookups fan out concurrently but each task writes only its own
// slot, so the output order always matches the input order. A failed
// lookup marks its record and leaves the rest of the page intact.
func (s *service) enrich(ctx context.Context, records []*Patient) []*EnrichedPatient {
	enriched := make([]*EnrichedPatient, len(records))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(enrichmentConcurrency)
	for i, record := range records {
		i, record := i, record
		group.Go(func() error {
			result := &EnrichedPatient{Patient: record}
			followUp, err := s.repo.FirstPendingFollowUp(groupCtx, *record.Id)
			switch {
			case err == nil:
				result.FollowUpDate = followUp.DueDate.Format(time.RFC3339)
				result.FollowedUp = true
			case stderrors.Is(err, ErrFollowUpNotFound):
				// no pending follow-up, zero values already say so
			default:
				s.logger.Errorw("error fetching follow-up", "patientId", record.Id.Hex(), "error", err)
				result.FollowUpLookupFailed = true
			}
			enriched[i] = result
			return nil
		})
	}
	_ = group.Wait()

	return enriched
}
