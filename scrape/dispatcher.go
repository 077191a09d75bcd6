package scrape

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dentalops/roster/errors"
	"github.com/dentalops/roster/patients"
)

const (
	jobProject    = "medical_scraper"
	jobSpider     = "mcna"
	jobScrapeMode = "partial"
)

// Dispatcher fans incoming patients out into per-portal scraping jobs.
type Dispatcher interface {
	Dispatch(ctx context.Context, roster []*patients.Patient, company string, practice string) error
}

type dispatcher struct {
	credentials CredentialStore
	gateway     Gateway
	logger      *zap.SugaredLogger
}

var _ Dispatcher = &dispatcher{}

type DispatcherParams struct {
	fx.In

	Credentials CredentialStore
	Gateway     Gateway
	Logger      *zap.SugaredLogger
}

func NewDispatcher(p DispatcherParams) Dispatcher {
	return &dispatcher{
		credentials: p.Credentials,
		gateway:     p.Gateway,
		logger:      p.Logger,
	}
}

// Dispatch groups the roster by source website and submits one job per
// mcna facility and a single job for all dentaquest patients. Groups are
// dispatched concurrently and fail independently; the returned error
// aggregates every group that could not be dispatched.
func (d *dispatcher) Dispatch(ctx context.Context, roster []*patients.Patient, company string, practice string) error {
	var mcnaPatients, dqPatients []*patients.Patient
	for _, patient := range roster {
		switch patient.Website {
		case patients.WebsiteMCNA:
			mcnaPatients = append(mcnaPatients, patient)
		case patients.WebsiteDentaQuest:
			dqPatients = append(dqPatients, patient)
		}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs error
	report := func(website string, facilityId *string, err error) {
		fields := []interface{}{"company", company, "practice", practice, "website", website}
		if facilityId != nil {
			fields = append(fields, "facilityId", *facilityId)
		}
		d.logger.Errorw("error dispatching scrape job", append(fields, zap.Error(err))...)
		mu.Lock()
		errs = multierr.Append(errs, err)
		mu.Unlock()
	}

	if len(mcnaPatients) > 0 {
		facilities := mapset.NewSet[string]()
		var skipped []string
		for _, patient := range mcnaPatients {
			if patient.FacilityId == nil {
				// mcna jobs are keyed by facility, so these records
				// cannot be dispatched at all
				id := "?"
				if patient.Id != nil {
					id = patient.Id.Hex()
				}
				skipped = append(skipped, id)
				continue
			}
			facilities.Add(*patient.FacilityId)
		}
		if len(skipped) > 0 {
			d.logger.Warnw("skipping mcna patients without a facility id",
				"company", company, "practice", practice, "count", len(skipped), "patientIds", skipped)
		}
		for facilityId := range facilities.Iter() {
			facilityId := facilityId
			group := facilityPatients(mcnaPatients, facilityId)
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := d.dispatchGroup(ctx, company, practice, patients.WebsiteMCNA, &facilityId, group); err != nil {
					report(patients.WebsiteMCNA, &facilityId, err)
				}
			}()
		}
	}

	if len(dqPatients) > 0 {
		group := stripFacilities(dqPatients)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.dispatchGroup(ctx, company, practice, patients.WebsiteDentaQuest, nil, group); err != nil {
				report(patients.WebsiteDentaQuest, nil, err)
			}
		}()
	}

	wg.Wait()
	return errs
}

func (d *dispatcher) dispatchGroup(ctx context.Context, company string, practice string, website string, facilityId *string, group []*patients.Patient) error {
	creds, err := d.credentials.GetCredentials(ctx, company, practice, website, facilityId)
	if stderrors.Is(err, ErrCredentialsNotFound) {
		return fmt.Errorf("%w: user not found for company %s", errors.NotFound, company)
	} else if err != nil {
		return err
	}

	if err := d.credentials.EnsureValidated(ctx, creds.Username); err != nil {
		if stderrors.Is(err, ErrUserNotValidated) {
			return fmt.Errorf("%w: please validate user credentials first for %s from company %s", errors.BadRequest, creds.Username, company)
		}
		return err
	}

	job := Job{
		Credentials: *creds,
		Website:     website,
		JobId:       uuid.New().String(),
		Patients:    group,
		Project:     jobProject,
		Spider:      jobSpider,
		ScrapeMode:  jobScrapeMode,
	}
	job.Credentials.JobId = job.JobId

	return d.gateway.Submit(ctx, job)
}

func facilityPatients(roster []*patients.Patient, facilityId string) []*patients.Patient {
	var group []*patients.Patient
	for _, patient := range roster {
		if patient.FacilityId != nil && *patient.FacilityId == facilityId {
			group = append(group, patient)
		}
	}
	return group
}

// stripFacilities copies the group without facility ids; the dentaquest
// portal is not facility scoped.
func stripFacilities(roster []*patients.Patient) []*patients.Patient {
	group := make([]*patients.Patient, 0, len(roster))
	for _, patient := range roster {
		stripped := *patient
		stripped.FacilityId = nil
		group = append(group, &stripped)
	}
	return group
}
