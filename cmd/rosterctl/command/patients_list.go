package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentalops/roster/patients"
)

var (
	listPractice string
	listCategory string
	listPage     int
	listPerPage  int
)

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a practice roster view",
	Long:  "The list command retrieves one page of a practice roster view",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listPatients) },
}

func listPatients(service patients.Service) error {
	list, err := service.List(context.TODO(), patients.ListParams{
		PracticeId: listPractice,
		Page:       listPage,
		PerPage:    listPerPage,
		Category:   patients.FilterCategory(listCategory),
	})
	if err != nil {
		return err
	}

	for _, patient := range list.Patients {
		followUp := patient.FollowUpDate
		if !patient.FollowedUp {
			followUp = "-"
		}
		fmt.Printf("%s %s, %s %s\n", patient.Id.Hex(), patient.GeneralInfo.LastName, patient.GeneralInfo.FirstName, followUp)
	}
	fmt.Printf("Found %v of %v patients\n", len(list.Patients), list.Total)

	return nil
}

func init() {
	patientsListCmd.Flags().StringVar(&listPractice, "practice", "", "Practice id")
	patientsListCmd.Flags().StringVar(&listCategory, "filter", "", "Roster view name")
	patientsListCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	patientsListCmd.Flags().IntVar(&listPerPage, "per-page", 20, "Page size")
	_ = patientsListCmd.MarkFlagRequired("practice")

	patientsCmd.AddCommand(patientsListCmd)
}
