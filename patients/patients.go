package patients

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("patient not found")
var ErrFollowUpNotFound = errors.New("follow-up not found")
var ErrFamilyNotFound = errors.New("family not found")

const (
	WebsiteDentaQuest = "dentaquest"
	WebsiteMCNA       = "mcna"
)

type Service interface {
	Get(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context, params ListParams) (*PatientList, error)
	CreateFollowUp(ctx context.Context, create FollowUpCreate, token string) (*FollowUp, error)
	SearchByName(ctx context.Context, practiceId string, pattern string) ([]*NameMatch, error)
	GetFamilyMembers(ctx context.Context, patientId string) ([]*FamilyMember, error)
	ListEligibility(ctx context.Context, patientId string) ([]*Eligibility, error)
}

// Patient is the roster record. GeneralInfo and MedicalInfo are always
// present; PDBInfo is absent for patients that never appeared in the payer
// activity feed, and several roster views rely on that absence.
type Patient struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PracticeId      string              `bson:"practiceId" json:"practiceId"`
	Website         string              `bson:"website,omitempty" json:"website,omitempty"`
	FacilityId      *string             `bson:"facilityId,omitempty" json:"facilityId,omitempty"`
	LastServiceDate *time.Time          `bson:"lastServiceDate,omitempty" json:"lastServiceDate,omitempty"`
	NextService     *time.Time          `bson:"nextService,omitempty" json:"nextService,omitempty"`
	LastTouch       *time.Time          `bson:"lastTouch,omitempty" json:"lastTouch,omitempty"`
	InsertDate      time.Time           `bson:"insertDate" json:"insertDate"`
	ContactStatus   *string             `bson:"contactStatus,omitempty" json:"contactStatus,omitempty"`
	GeneralInfo     GeneralInfo         `bson:"generalInfo" json:"generalInfo"`
	MedicalInfo     MedicalInfo         `bson:"medicalInfo" json:"medicalInfo"`
	PDBInfo         *PDBInfo            `bson:"pdbInfo,omitempty" json:"pdbInfo,omitempty"`
}

type GeneralInfo struct {
	FirstName     string  `bson:"firstName" json:"firstName"`
	LastName      string  `bson:"lastName" json:"lastName"`
	DOB           *string `bson:"dob,omitempty" json:"dob,omitempty"`
	SubscriberId  *string `bson:"subscriberId,omitempty" json:"subscriberId,omitempty"`
	MCOStatus     *bool   `bson:"mcoStatus,omitempty" json:"mcoStatus,omitempty"`
	MultiPractice bool    `bson:"multiPractice" json:"multiPractice"`
}

type MedicalInfo struct {
	Insurance *string `bson:"insurance,omitempty" json:"insurance,omitempty"`
}

type PDBInfo struct {
	LastServiceDatePdb     *time.Time `bson:"lastServiceDatePdb,omitempty" json:"lastServiceDatePdb,omitempty"`
	LastProphylaxisDatePdb *time.Time `bson:"lastProphylaxisDatePdb,omitempty" json:"lastProphylaxisDatePdb,omitempty"`
	TxPlanned              int        `bson:"txPlanned" json:"txPlanned"`
	TotalVisits            int        `bson:"totalVisits" json:"totalVisits"`
}

type FollowUpStatus string

const (
	FollowUpStatusPending FollowUpStatus = "Pending"
	FollowUpStatusDone    FollowUpStatus = "Done"
)

type FollowUp struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientId   primitive.ObjectID  `bson:"patientId" json:"patientId"`
	Author      string              `bson:"author" json:"author"`
	Assignee    string              `bson:"assignee" json:"assignee"`
	DueDate     time.Time           `bson:"dueDate" json:"dueDate"`
	Description string              `bson:"description" json:"description"`
	Status      FollowUpStatus      `bson:"status" json:"status"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

type FollowUpCreate struct {
	PatientId   string
	DueDate     time.Time
	Assignee    string
	Description string
}

// FamilyMember links a dependent patient to the guarantor of its family.
type FamilyMember struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GuarantorId primitive.ObjectID  `bson:"guarantorId" json:"guarantorId"`
	PatientId   primitive.ObjectID  `bson:"patientId" json:"patientId"`
	Patient     *Patient            `bson:"-" json:"patient,omitempty"`
}

type Eligibility struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientId     primitive.ObjectID  `bson:"patientId" json:"patientId"`
	Status        string              `bson:"status" json:"status"`
	PlanName      string              `bson:"planName,omitempty" json:"planName,omitempty"`
	EffectiveDate *time.Time          `bson:"effectiveDate,omitempty" json:"effectiveDate,omitempty"`
	CheckedAt     time.Time           `bson:"checkedAt" json:"checkedAt"`
}

type NameMatch struct {
	Id        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
}

// EnrichedPatient is a roster record together with its nearest pending
// follow-up. FollowUpLookupFailed marks records whose lookup errored while
// the rest of the page succeeded.
type EnrichedPatient struct {
	*Patient
	FollowUpDate         string `json:"followUpDate"`
	FollowedUp           bool   `json:"followedUp"`
	FollowUpLookupFailed bool   `json:"followUpLookupFailed,omitempty"`
}

type PatientList struct {
	Patients []*EnrichedPatient
	Total    int64
}

type ListParams struct {
	PracticeId  string
	Page        int
	PerPage     int
	Category    FilterCategory
	FilterField string
	FilterBy    string
	SortBy      string
	SortOrder   string
}
