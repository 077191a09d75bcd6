package patients

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dentalops/roster/errors"
	"github.com/dentalops/roster/store"
)

type service struct {
	repo     Repository
	identity IdentityService
	notes    NoteService
	logger   *zap.SugaredLogger
	now      func() time.Time
}

var _ Service = &service{}

type ServiceParams struct {
	fx.In

	Repo     Repository
	Identity IdentityService
	Notes    NoteService
	Logger   *zap.SugaredLogger
	Clock    func() time.Time `optional:"true"`
}

func NewService(p ServiceParams) (Service, error) {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:     p.Repo,
		identity: p.Identity,
		notes:    p.Notes,
		logger:   p.Logger,
		now:      clock,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

// List selects one page of the requested roster view and enriches every
// record with its nearest pending follow-up.
func (s *service) List(ctx context.Context, params ListParams) (*PatientList, error) {
	if params.Page < 1 {
		return nil, fmt.Errorf("%w: page must be 1 or greater", errors.BadRequest)
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = store.DefaultPagination().Limit
	}

	clause, err := CategoryClause(params.Category, s.now())
	if err != nil {
		return nil, err
	}
	if fieldFilter := FieldFilterClause(params.FilterField, params.FilterBy); fieldFilter != nil {
		clause = store.And{clause, fieldFilter}
	}
	sort := ResolveSort(params.SortBy, params.SortOrder)
	pagination := store.Pagination{
		Offset: (params.Page - 1) * perPage,
		Limit:  perPage,
	}

	count, records, err := s.repo.List(ctx, params.PracticeId, clause, sort, pagination)
	if err != nil {
		s.logger.Errorw("error listing roster", "practiceId", params.PracticeId, "category", params.Category, zap.Error(err))
		return nil, fmt.Errorf("%w: unable to list patients", errors.InternalServerError)
	}

	return &PatientList{
		Patients: s.enrich(ctx, records),
		Total:    count,
	}, nil
}

// CreateFollowUp resolves the acting user from the identity token, records
// a pending follow-up and appends an audit note to the patient chart. The
// note is best effort and never rolls back the follow-up.
func (s *service) CreateFollowUp(ctx context.Context, create FollowUpCreate, token string) (*FollowUp, error) {
	authorId, err := s.identity.ResolveUser(ctx, token, "id")
	if err != nil {
		return nil, err
	}
	user, err := s.identity.GetUser(ctx, authorId)
	if err != nil {
		return nil, err
	}

	patientId, err := primitive.ObjectIDFromHex(create.PatientId)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id", errors.BadRequest)
	}

	followUp := FollowUp{
		PatientId:   patientId,
		Author:      authorId,
		Assignee:    create.Assignee,
		DueDate:     create.DueDate,
		Description: create.Description,
		Status:      FollowUpStatusPending,
		CreatedAt:   s.now(),
	}
	created, err := s.repo.CreateFollowUp(ctx, followUp)
	if err != nil {
		s.logger.Errorw("error creating follow-up", "patientId", create.PatientId, zap.Error(err))
		return nil, fmt.Errorf("%w: unable to create follow-up", errors.InternalServerError)
	}

	if err := s.notes.CreateNote(ctx, create.PatientId, user.Username, "Follow UP created"); err != nil {
		s.logger.Warnw("error creating follow-up note", "patientId", create.PatientId, zap.Error(err))
	}

	return created, nil
}

func (s *service) SearchByName(ctx context.Context, practiceId string, pattern string) ([]*NameMatch, error) {
	return s.repo.SearchByName(ctx, practiceId, pattern)
}

// GetFamilyMembers resolves the family from either side of the grouping:
// a guarantor gets its dependents, a dependent gets its guarantor plus the
// remaining dependents.
func (s *service) GetFamilyMembers(ctx context.Context, patientId string) ([]*FamilyMember, error) {
	objId, err := primitive.ObjectIDFromHex(patientId)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id", errors.BadRequest)
	}

	dependents, err := s.repo.ListFamilyByGuarantor(ctx, objId, nil)
	if err != nil {
		return nil, err
	}
	if len(dependents) > 0 {
		return s.attachFamilyPatients(ctx, dependents)
	}

	own, err := s.repo.GetFamilyByPatient(ctx, objId)
	if stderrors.Is(err, ErrFamilyNotFound) {
		return []*FamilyMember{}, nil
	} else if err != nil {
		return nil, err
	}

	siblings, err := s.repo.ListFamilyByGuarantor(ctx, own.GuarantorId, &objId)
	if err != nil {
		return nil, err
	}

	return s.attachFamilyPatients(ctx, append(siblings, own))
}

func (s *service) attachFamilyPatients(ctx context.Context, members []*FamilyMember) ([]*FamilyMember, error) {
	for _, member := range members {
		patient, err := s.repo.Get(ctx, member.PatientId.Hex())
		if stderrors.Is(err, ErrNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		member.Patient = patient
	}
	return members, nil
}

func (s *service) ListEligibility(ctx context.Context, patientId string) ([]*Eligibility, error) {
	objId, err := primitive.ObjectIDFromHex(patientId)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id", errors.BadRequest)
	}
	return s.repo.ListEligibility(ctx, objId)
}
