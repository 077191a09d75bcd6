package patients_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dentalops/roster/errors"
	"github.com/dentalops/roster/patients"
)

var _ = Describe("CategoryClause", func() {
	var now time.Time
	var windows patients.Windows

	BeforeEach(func() {
		now = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		windows = patients.WindowsAt(now)
	})

	// The recurring "managed care or minor portal" disjunction.
	eligible := bson.M{"$or": []bson.M{
		{"generalInfo.mcoStatus": true},
		{"$and": []bson.M{
			{"website": bson.M{"$ne": "dentaquest"}},
			{"website": bson.M{"$ne": "mcna"}},
		}},
	}}

	selectorFor := func(category patients.FilterCategory) bson.M {
		clause, err := patients.CategoryClause(category, now)
		Expect(err).ToNot(HaveOccurred())
		return clause.Selector()
	}

	Describe("the uncategorized roster", func() {
		It("excludes every administratively closed contact status", func() {
			statuses := []string{"Do Not Contact", "Changed Dentists", "Moved Away", "Placed on Books!", "Already Scheduled"}
			exclusions := make([]bson.M, 0, len(statuses))
			for _, status := range statuses {
				exclusions = append(exclusions, bson.M{"$nor": []bson.M{
					{"contactStatus": primitive.Regex{Pattern: status, Options: "i"}},
				}})
			}
			Expect(selectorFor("")).To(Equal(bson.M{"$and": exclusions}))
		})
	})

	Describe("named views", func() {
		It("does not apply the contact status exclusions", func() {
			for _, category := range []patients.FilterCategory{
				patients.CategoryNewToRoster,
				patients.CategoryNoVisit,
				patients.CategoryUnscheduled,
				patients.CategoryOverdue,
				patients.CategoryInactive,
				patients.CategoryNoShow,
				patients.CategoryScheduledToday,
				patients.CategoryMultiPractice,
			} {
				raw, err := bson.Marshal(bson.M{"selector": selectorFor(category)})
				Expect(err).ToNot(HaveOccurred())
				Expect(string(raw)).ToNot(ContainSubstring("contactStatus"))
			}
		})
	})

	Describe("new_to_roster", func() {
		It("selects recently inserted non-MCO patients with a subscriber id", func() {
			Expect(selectorFor(patients.CategoryNewToRoster)).To(Equal(bson.M{"$and": []bson.M{
				{"generalInfo.subscriberId": bson.M{"$ne": nil}},
				{"$or": []bson.M{
					{"generalInfo.mcoStatus": false},
					{"generalInfo.mcoStatus": nil},
				}},
				{"insertDate": bson.M{"$gt": windows.Past60}},
			}}))
		})
	})

	Describe("no_visit", func() {
		It("requires no service dates anywhere, in practice and payer records alike", func() {
			Expect(selectorFor(patients.CategoryNoVisit)).To(Equal(bson.M{"$and": []bson.M{
				eligible,
				{"lastServiceDate": nil},
				{"pdbInfo.lastServiceDatePdb": nil},
				{"pdbInfo.lastProphylaxisDatePdb": nil},
			}}))
		})
	})

	Describe("unscheduled", func() {
		It("selects planned treatment with no next visit", func() {
			Expect(selectorFor(patients.CategoryUnscheduled)).To(Equal(bson.M{"$and": []bson.M{
				eligible,
				{"pdbInfo.txPlanned": bson.M{"$gt": 0}},
				{"nextService": nil},
			}}))
		})
	})

	Describe("overdue", func() {
		It("matches the cross-over of practice and payer service windows", func() {
			Expect(selectorFor(patients.CategoryOverdue)).To(Equal(bson.M{"$and": []bson.M{
				eligible,
				{"$or": []bson.M{
					{"$and": []bson.M{
						{"pdbInfo.lastServiceDatePdb": bson.M{"$gt": windows.Past365}},
						{"pdbInfo.lastServiceDatePdb": bson.M{"$lt": windows.Past180}},
						{"lastServiceDate": bson.M{"$lt": windows.Past180}},
					}},
					{"$and": []bson.M{
						{"lastServiceDate": bson.M{"$gt": windows.Past365}},
						{"lastServiceDate": bson.M{"$lt": windows.Past180}},
						{"pdbInfo.lastServiceDatePdb": bson.M{"$lt": windows.Past180}},
					}},
				}},
			}}))
		})
	})

	Describe("inactive", func() {
		It("requires some payer activity on record", func() {
			Expect(selectorFor(patients.CategoryInactive)).To(Equal(bson.M{"$and": []bson.M{
				eligible,
				{"nextService": nil},
				{"$or": []bson.M{
					{"lastServiceDate": bson.M{"$lt": windows.Past365}},
					{"pdbInfo.lastServiceDatePdb": bson.M{"$lt": windows.Past365}},
				}},
				{"$or": []bson.M{
					{"pdbInfo.lastProphylaxisDatePdb": bson.M{"$ne": nil}},
					{"pdbInfo.lastServiceDatePdb": bson.M{"$ne": nil}},
				}},
			}}))
		})

		It("cannot match a patient without a payer record", func() {
			// Both branches of the presence disjunction require a non-null
			// payer field, and a missing embedded document satisfies
			// neither.
			selector := selectorFor(patients.CategoryInactive)
			branches := selector["$and"].([]bson.M)
			presence := branches[len(branches)-1]["$or"].([]bson.M)
			for _, branch := range presence {
				for _, condition := range branch {
					Expect(condition).To(Equal(bson.M{"$ne": nil}))
				}
			}
		})
	})

	Describe("no show'd", func() {
		It("selects MCO patients whose missed visit postdates the last touch", func() {
			Expect(selectorFor(patients.CategoryNoShow)).To(Equal(bson.M{"$and": []bson.M{
				{"generalInfo.mcoStatus": true},
				{"nextService": bson.M{"$lt": now}},
				{"$expr": bson.M{"$gt": bson.A{"$nextService", "$lastTouch"}}},
			}}))
		})
	})

	Describe("scheduled_today", func() {
		It("keeps the literal [tomorrow, now] bounds", func() {
			Expect(selectorFor(patients.CategoryScheduledToday)).To(Equal(bson.M{
				"nextService": bson.M{
					"$gte": time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
					"$lte": time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				},
			}))
		})
	})

	Describe("existing_in_another_practices", func() {
		It("selects multi practice patients", func() {
			Expect(selectorFor(patients.CategoryMultiPractice)).To(Equal(bson.M{
				"generalInfo.multiPractice": true,
			}))
		})
	})

	Describe("unknown categories", func() {
		It("returns a bad request error", func() {
			_, err := patients.CategoryClause("definitely_not_a_view", now)
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})
})
