package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dentalops/roster/patients"
)

var Faker = faker.NewWithSeed(rand.NewSource(time.Now().UnixNano()))

var websites = []string{patients.WebsiteDentaQuest, patients.WebsiteMCNA, "other"}

func strp(s string) *string {
	return &s
}

func boolp(b bool) *bool {
	return &b
}

func timep(t time.Time) *time.Time {
	return &t
}

func RandomPatient() patients.Patient {
	id := primitive.NewObjectID()
	lastService := Faker.Time().TimeBetween(time.Now().AddDate(-2, 0, 0), time.Now())
	return patients.Patient{
		Id:              &id,
		PracticeId:      Faker.UUID().V4(),
		Website:         websites[Faker.IntBetween(0, len(websites)-1)],
		FacilityId:      strp(Faker.Numerify("####")),
		LastServiceDate: timep(lastService),
		LastTouch:       timep(Faker.Time().TimeBetween(lastService, time.Now())),
		InsertDate:      Faker.Time().TimeBetween(time.Now().AddDate(-1, 0, 0), time.Now()),
		GeneralInfo: patients.GeneralInfo{
			FirstName:    Faker.Person().FirstName(),
			LastName:     Faker.Person().LastName(),
			DOB:          strp(Faker.Time().ISO8601(time.Now())[:10]),
			SubscriberId: strp(Faker.UUID().V4()),
			MCOStatus:    boolp(Faker.Bool()),
		},
		MedicalInfo: patients.MedicalInfo{
			Insurance: strp(Faker.Company().Name()),
		},
		PDBInfo: &patients.PDBInfo{
			LastServiceDatePdb: timep(lastService),
			TxPlanned:          Faker.IntBetween(0, 5),
			TotalVisits:        Faker.IntBetween(1, 40),
		},
	}
}

func RandomFollowUp(patientId primitive.ObjectID) patients.FollowUp {
	id := primitive.NewObjectID()
	return patients.FollowUp{
		Id:          &id,
		PatientId:   patientId,
		Author:      Faker.UUID().V4(),
		Assignee:    Faker.Person().Name(),
		DueDate:     Faker.Time().TimeBetween(time.Now(), time.Now().AddDate(0, 3, 0)),
		Description: Faker.Lorem().Sentence(6),
		Status:      patients.FollowUpStatusPending,
		CreatedAt:   time.Now(),
	}
}
