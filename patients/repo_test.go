package patients_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"

	"github.com/dentalops/roster/patients"
	patientsTest "github.com/dentalops/roster/patients/test"
	"github.com/dentalops/roster/store"
	dbTest "github.com/dentalops/roster/store/test"
)

var _ = Describe("Patients Repository", func() {
	var repo patients.Repository
	var database *mongo.Database
	var collection *mongo.Collection
	var ctx context.Context

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		database = dbTest.GetTestDatabase()
		collection = database.Collection("patients")
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = patients.NewRepository(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	Describe("Get", func() {
		var patient patients.Patient

		BeforeEach(func() {
			patient = patientsTest.RandomPatient()
			_, err := collection.InsertOne(ctx, patient)
			Expect(err).ToNot(HaveOccurred())
		})

		AfterEach(func() {
			_, err := collection.DeleteOne(ctx, primitive.M{"_id": patient.Id})
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns the correct patient", func() {
			result, err := repo.Get(ctx, patient.Id.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
			Expect(result.Id).To(Equal(patient.Id))
			Expect(result.GeneralInfo.LastName).To(Equal(patient.GeneralInfo.LastName))
		})

		It("fails when the patient does not exist", func() {
			_, err := repo.Get(ctx, primitive.NewObjectID().Hex())
			Expect(err).To(MatchError(patients.ErrNotFound))
		})

		It("fails for a malformed id", func() {
			_, err := repo.Get(ctx, "not-an-id")
			Expect(err).To(MatchError(patients.ErrNotFound))
		})
	})

	Describe("List", func() {
		var practiceId string
		var inPractice []patients.Patient
		var flagged int

		BeforeEach(func() {
			practiceId = dbTest.Faker.UUID().V4()
			lastNames := []string{"Clark", "Adams", "Evans", "Brown", "Diaz", "Ford", "Grant"}
			flagged = 0

			documents := make([]interface{}, 0, len(lastNames)+2)
			inPractice = make([]patients.Patient, 0, len(lastNames))
			for i, lastName := range lastNames {
				patient := patientsTest.RandomPatient()
				patient.PracticeId = practiceId
				patient.GeneralInfo.LastName = lastName
				patient.GeneralInfo.MultiPractice = i%2 == 0
				if patient.GeneralInfo.MultiPractice {
					flagged++
				}
				documents = append(documents, patient)
				inPractice = append(inPractice, patient)
			}
			// flagged patients of another practice must never leak in
			for i := 0; i < 2; i++ {
				patient := patientsTest.RandomPatient()
				patient.GeneralInfo.MultiPractice = true
				documents = append(documents, patient)
			}

			result, err := collection.InsertMany(ctx, documents)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.InsertedIDs).To(HaveLen(len(documents)))
		})

		AfterEach(func() {
			_, err := collection.DeleteMany(ctx, primitive.M{})
			Expect(err).ToNot(HaveOccurred())
		})

		It("scopes the roster to the practice", func() {
			count, records, err := repo.List(ctx, practiceId, nil, nil, store.Pagination{Limit: 100})
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(int64(len(inPractice))))
			Expect(records).To(HaveLen(len(inPractice)))
			for _, record := range records {
				Expect(record.PracticeId).To(Equal(practiceId))
			}
		})

		It("returns a total that equals the sum of the page lengths", func() {
			clause, err := patients.CategoryClause(patients.CategoryMultiPractice, time.Now())
			Expect(err).ToNot(HaveOccurred())

			perPage := 3
			seen := 0
			for offset := 0; ; offset += perPage {
				count, records, err := repo.List(ctx, practiceId, clause, nil, store.Pagination{Offset: offset, Limit: perPage})
				Expect(err).ToNot(HaveOccurred())
				Expect(count).To(Equal(int64(flagged)))
				for _, record := range records {
					Expect(record.GeneralInfo.MultiPractice).To(BeTrue())
				}
				seen += len(records)
				if len(records) < perPage {
					break
				}
			}
			Expect(seen).To(Equal(flagged))
		})

		It("orders the page by the requested attribute", func() {
			sort := &store.Sort{Attribute: "generalInfo.lastName", Ascending: true}
			_, records, err := repo.List(ctx, practiceId, nil, sort, store.Pagination{Limit: 100})
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(len(inPractice)))
			for i := 1; i < len(records); i++ {
				Expect(records[i-1].GeneralInfo.LastName < records[i].GeneralInfo.LastName).To(BeTrue())
			}
		})
	})

	Describe("Follow-ups", func() {
		var patientId primitive.ObjectID
		var followUps *mongo.Collection

		BeforeEach(func() {
			patientId = primitive.NewObjectID()
			followUps = database.Collection("follow_ups")
		})

		AfterEach(func() {
			_, err := followUps.DeleteMany(ctx, primitive.M{})
			Expect(err).ToNot(HaveOccurred())
		})

		newFollowUp := func(dueDate time.Time, status patients.FollowUpStatus) *patients.FollowUp {
			followUp := patientsTest.RandomFollowUp(patientId)
			followUp.Id = nil
			followUp.DueDate = dueDate
			followUp.Status = status
			created, err := repo.CreateFollowUp(ctx, followUp)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeNil())
			return created
		}

		Describe("CreateFollowUp", func() {
			It("persists the follow-up", func() {
				dueDate := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
				created := newFollowUp(dueDate, patients.FollowUpStatusPending)

				var inserted patients.FollowUp
				err := followUps.FindOne(ctx, primitive.M{"_id": created.Id}).Decode(&inserted)
				Expect(err).ToNot(HaveOccurred())
				Expect(inserted.PatientId).To(Equal(patientId))
				Expect(inserted.Status).To(Equal(patients.FollowUpStatusPending))
				Expect(inserted.DueDate).To(BeTemporally("==", dueDate))
			})
		})

		Describe("FirstPendingFollowUp", func() {
			day := func(d int) time.Time {
				return time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC)
			}

			It("returns the follow-up with the lowest due date", func() {
				newFollowUp(day(10), patients.FollowUpStatusPending)
				earliest := newFollowUp(day(5), patients.FollowUpStatusPending)

				result, err := repo.FirstPendingFollowUp(ctx, patientId)
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Id).To(Equal(earliest.Id))
				Expect(result.DueDate).To(BeTemporally("==", earliest.DueDate))
			})

			It("ignores follow-ups that are already done", func() {
				newFollowUp(day(1), patients.FollowUpStatusDone)
				pending := newFollowUp(day(5), patients.FollowUpStatusPending)

				result, err := repo.FirstPendingFollowUp(ctx, patientId)
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Id).To(Equal(pending.Id))
			})

			It("breaks due date ties by insertion order", func() {
				first := newFollowUp(day(5), patients.FollowUpStatusPending)
				newFollowUp(day(5), patients.FollowUpStatusPending)

				result, err := repo.FirstPendingFollowUp(ctx, patientId)
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Id).To(Equal(first.Id))
			})

			It("fails when the patient has no pending follow-up", func() {
				newFollowUp(day(1), patients.FollowUpStatusDone)

				_, err := repo.FirstPendingFollowUp(ctx, patientId)
				Expect(err).To(MatchError(patients.ErrFollowUpNotFound))
			})
		})
	})

	Describe("Families", func() {
		var families *mongo.Collection
		var guarantorId primitive.ObjectID
		var members []patients.FamilyMember

		BeforeEach(func() {
			families = database.Collection("families")
			guarantorId = primitive.NewObjectID()

			members = make([]patients.FamilyMember, 2)
			documents := make([]interface{}, len(members))
			for i := range members {
				id := primitive.NewObjectID()
				members[i] = patients.FamilyMember{
					Id:          &id,
					GuarantorId: guarantorId,
					PatientId:   primitive.NewObjectID(),
				}
				documents[i] = members[i]
			}
			_, err := families.InsertMany(ctx, documents)
			Expect(err).ToNot(HaveOccurred())
		})

		AfterEach(func() {
			_, err := families.DeleteMany(ctx, primitive.M{})
			Expect(err).ToNot(HaveOccurred())
		})

		It("lists every dependent of a guarantor", func() {
			result, err := repo.ListFamilyByGuarantor(ctx, guarantorId, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(len(members)))
		})

		It("excludes the requested patient from the listing", func() {
			result, err := repo.ListFamilyByGuarantor(ctx, guarantorId, &members[0].PatientId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].PatientId).To(Equal(members[1].PatientId))
		})

		It("finds the family row of a dependent", func() {
			result, err := repo.GetFamilyByPatient(ctx, members[0].PatientId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.GuarantorId).To(Equal(guarantorId))
		})

		It("fails for a patient without a family", func() {
			_, err := repo.GetFamilyByPatient(ctx, primitive.NewObjectID())
			Expect(err).To(MatchError(patients.ErrFamilyNotFound))
		})
	})

	Describe("ListEligibility", func() {
		var eligibility *mongo.Collection
		var patientId primitive.ObjectID

		BeforeEach(func() {
			eligibility = database.Collection("eligibility")
			patientId = primitive.NewObjectID()

			documents := []interface{}{
				patients.Eligibility{PatientId: patientId, Status: "Eligible", CheckedAt: time.Now()},
				patients.Eligibility{PatientId: patientId, Status: "Ineligible", CheckedAt: time.Now().AddDate(0, -1, 0)},
				patients.Eligibility{PatientId: primitive.NewObjectID(), Status: "Eligible", CheckedAt: time.Now()},
			}
			_, err := eligibility.InsertMany(ctx, documents)
			Expect(err).ToNot(HaveOccurred())
		})

		AfterEach(func() {
			_, err := eligibility.DeleteMany(ctx, primitive.M{})
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns only the snapshots of the patient", func() {
			result, err := repo.ListEligibility(ctx, patientId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))
			for _, snapshot := range result {
				Expect(snapshot.PatientId).To(Equal(patientId))
			}
		})
	})
})
