package patients

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/dentalops/roster/store"
)

const (
	patientsCollectionName    = "patients"
	followUpsCollectionName   = "follow_ups"
	familiesCollectionName    = "families"
	eligibilityCollectionName = "eligibility"
)

//go:generate mockgen --build_flags=--mod=mod -source=./repo.go -destination=./test/mock_repository.go -package test MockRepository

type Repository interface {
	Get(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context, practiceId string, clause store.Clause, sort *store.Sort, pagination store.Pagination) (int64, []*Patient, error)
	SearchByName(ctx context.Context, practiceId string, pattern string) ([]*NameMatch, error)
	FirstPendingFollowUp(ctx context.Context, patientId primitive.ObjectID) (*FollowUp, error)
	CreateFollowUp(ctx context.Context, followUp FollowUp) (*FollowUp, error)
	ListFamilyByGuarantor(ctx context.Context, guarantorId primitive.ObjectID, excludePatientId *primitive.ObjectID) ([]*FamilyMember, error)
	GetFamilyByPatient(ctx context.Context, patientId primitive.ObjectID) (*FamilyMember, error)
	ListEligibility(ctx context.Context, patientId primitive.ObjectID) ([]*Eligibility, error)
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		patients:    db.Collection(patientsCollectionName),
		followUps:   db.Collection(followUpsCollectionName),
		families:    db.Collection(familiesCollectionName),
		eligibility: db.Collection(eligibilityCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	patients    *mongo.Collection
	followUps   *mongo.Collection
	families    *mongo.Collection
	eligibility *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.patients.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "practiceId", Value: 1},
				{Key: "generalInfo.lastName", Value: 1},
			},
			Options: options.Index().SetName("PracticeRoster"),
		},
		{
			Keys: bson.D{
				{Key: "practiceId", Value: 1},
				{Key: "website", Value: 1},
			},
			Options: options.Index().SetName("PracticeWebsite"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.followUps.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "dueDate", Value: 1},
			},
			Options: options.Index().SetName("PendingFollowUps"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.families.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "guarantorId", Value: 1}},
			Options: options.Index().SetName("FamilyGuarantor"),
		},
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("FamilyPatient"),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.eligibility.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}},
			Options: options.Index().SetName("EligibilityPatient"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, id string) (*Patient, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	patient := &Patient{}
	err = r.patients.FindOne(ctx, bson.M{"_id": objId}).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching patient: %w", err)
	}

	return patient, nil
}

// List returns the total number of roster records matching the clause for
// the practice together with one page of them. The count and the page are
// produced from the same selector so they can never drift apart.
func (r *repository) List(ctx context.Context, practiceId string, clause store.Clause, sort *store.Sort, pagination store.Pagination) (int64, []*Patient, error) {
	selector := bson.M{"practiceId": practiceId}
	if clause != nil {
		selector = bson.M{"$and": []bson.M{
			{"practiceId": practiceId},
			clause.Selector(),
		}}
	}

	count, err := r.patients.CountDocuments(ctx, selector)
	if err != nil {
		return 0, nil, fmt.Errorf("error counting patients: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(pagination.Offset)).
		SetLimit(int64(pagination.Limit))
	if sort != nil {
		opts.SetSort(bson.D{{Key: sort.Attribute, Value: sort.Order()}})
	}

	cursor, err := r.patients.Find(ctx, selector, opts)
	if err != nil {
		return 0, nil, fmt.Errorf("error listing patients: %w", err)
	}

	var patients []*Patient
	if err = cursor.All(ctx, &patients); err != nil {
		return 0, nil, fmt.Errorf("error decoding patient list: %w", err)
	}

	return count, patients, nil
}

func (r *repository) SearchByName(ctx context.Context, practiceId string, pattern string) ([]*NameMatch, error) {
	selector := bson.M{
		"practiceId": practiceId,
		"$or": []bson.M{
			{"generalInfo.lastName": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"generalInfo.firstName": primitive.Regex{Pattern: pattern, Options: "i"}},
		},
	}
	opts := options.Find().SetProjection(bson.M{
		"generalInfo.firstName": 1,
		"generalInfo.lastName":  1,
	})

	cursor, err := r.patients.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching patients: %w", err)
	}

	var matched []*Patient
	if err = cursor.All(ctx, &matched); err != nil {
		return nil, fmt.Errorf("error decoding patient search: %w", err)
	}

	matches := make([]*NameMatch, 0, len(matched))
	for _, patient := range matched {
		matches = append(matches, &NameMatch{
			Id:        *patient.Id,
			FirstName: patient.GeneralInfo.FirstName,
			LastName:  patient.GeneralInfo.LastName,
		})
	}
	return matches, nil
}

// FirstPendingFollowUp returns the pending follow-up with the lowest due
// date. Ties are broken by insertion order so the selection is
// deterministic.
func (r *repository) FirstPendingFollowUp(ctx context.Context, patientId primitive.ObjectID) (*FollowUp, error) {
	selector := bson.M{
		"patientId": patientId,
		"status":    FollowUpStatusPending,
	}
	opts := options.FindOne().SetSort(bson.D{
		{Key: "dueDate", Value: 1},
		{Key: "_id", Value: 1},
	})

	followUp := &FollowUp{}
	err := r.followUps.FindOne(ctx, selector, opts).Decode(followUp)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFollowUpNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching follow-up: %w", err)
	}

	return followUp, nil
}

func (r *repository) CreateFollowUp(ctx context.Context, followUp FollowUp) (*FollowUp, error) {
	res, err := r.followUps.InsertOne(ctx, followUp)
	if err != nil {
		return nil, fmt.Errorf("error creating follow-up: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	followUp.Id = &id
	return &followUp, nil
}

func (r *repository) ListFamilyByGuarantor(ctx context.Context, guarantorId primitive.ObjectID, excludePatientId *primitive.ObjectID) ([]*FamilyMember, error) {
	selector := bson.M{"guarantorId": guarantorId}
	if excludePatientId != nil {
		selector["patientId"] = bson.M{"$ne": *excludePatientId}
	}

	cursor, err := r.families.Find(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("error listing family members: %w", err)
	}

	var members []*FamilyMember
	if err = cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("error decoding family members: %w", err)
	}

	return members, nil
}

func (r *repository) GetFamilyByPatient(ctx context.Context, patientId primitive.ObjectID) (*FamilyMember, error) {
	member := &FamilyMember{}
	err := r.families.FindOne(ctx, bson.M{"patientId": patientId}).Decode(member)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFamilyNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching family member: %w", err)
	}

	return member, nil
}

func (r *repository) ListEligibility(ctx context.Context, patientId primitive.ObjectID) ([]*Eligibility, error) {
	cursor, err := r.eligibility.Find(ctx, bson.M{"patientId": patientId})
	if err != nil {
		return nil, fmt.Errorf("error listing eligibility: %w", err)
	}

	var snapshots []*Eligibility
	if err = cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("error decoding eligibility: %w", err)
	}

	return snapshots, nil
}
