// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     cmd
// Description: Seller commands: edit, save and list
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/tui/formeditor"
)

// sellerInput holds the fields given on the command line. Nil fields keep
// the stored value.
type sellerInput struct {
	ID           int
	Name         *string
	Email        *string
	BirthDate    *string
	BaseSalary   *string
	DepartmentID int
}

var (
	sellerFlags sellerInput

	sellerName       string
	sellerEmail      string
	sellerBirthDate  string
	sellerBaseSalary string
)

var sellerCmd = &cobra.Command{
	Use:   "seller",
	Short: "Edit, save or list sellers",
}

var sellerEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Open the seller form",
	Long: `Opens the seller form. Without an id a new seller is created.

Keys:
  Tab         Next field
  Left/Right  Choose department
  Ctrl+S      Save
  Esc         Cancel`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSellerEdit,
}

var sellerSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a seller without the form",
	Example: `  sellerdesk seller save --name "Ana Lima" --email ana@example.com \
    --birth-date 23/11/1999 --base-salary 1500.00 --department-id 2
  sellerdesk seller save --id 4 --email ana.lima@example.com`,
	Args: cobra.NoArgs,
	RunE: runSellerSave,
}

var sellerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sellers ordered by name",
	Args:  cobra.NoArgs,
	RunE:  runSellerList,
}

func init() {
	rootCmd.AddCommand(sellerCmd)
	sellerCmd.AddCommand(sellerEditCmd, sellerSaveCmd, sellerListCmd)

	f := sellerSaveCmd.Flags()
	f.IntVar(&sellerFlags.ID, "id", 0, "id of the seller to update")
	f.StringVar(&sellerName, "name", "", "seller name")
	f.StringVar(&sellerEmail, "email", "", "email address")
	f.StringVar(&sellerBirthDate, "birth-date", "", "birth date in the configured layout")
	f.StringVar(&sellerBaseSalary, "base-salary", "", "base salary in the configured locale")
	f.IntVar(&sellerFlags.DepartmentID, "department-id", 0, "department id (default: first by name)")
}

func runSellerEdit(cmd *cobra.Command, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, true)
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer a.close()

	entity, err := a.findSeller(ctx, id)
	if err != nil {
		printError("failed to load seller", err)
		return err
	}

	presenter := formeditor.NewPresenter()
	s, err := a.sellerSession(presenter)
	if err != nil {
		return err
	}
	s.Populate(entity)

	saved, err := formeditor.Run(formeditor.Config{
		Editor:    formeditor.NewSellerEditor(s, a.cfg.Form.DateLayout),
		Presenter: presenter,
	})
	if err != nil {
		return err
	}
	if saved {
		seller, _ := s.Entity()
		fmt.Fprintf(cmd.OutOrStdout(), "Seller saved: %s\n", seller)
	}
	return nil
}

func runSellerSave(cmd *cobra.Command, args []string) error {
	in := sellerFlags
	flags := cmd.Flags()
	if flags.Changed("name") {
		in.Name = &sellerName
	}
	if flags.Changed("email") {
		in.Email = &sellerEmail
	}
	if flags.Changed("birth-date") {
		in.BirthDate = &sellerBirthDate
	}
	if flags.Changed("base-salary") {
		in.BaseSalary = &sellerBaseSalary
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, false)
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer a.close()

	seller, err := saveSeller(ctx, a, cmd.ErrOrStderr(), in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seller saved: %s\n", seller)
	return nil
}

func saveSeller(ctx context.Context, a *app, out io.Writer, in sellerInput) (domain.Seller, error) {
	s, err := a.sellerSession(consolePresenter{out: out})
	if err != nil {
		return domain.Seller{}, err
	}
	if err := s.LoadReferenceData(ctx); err != nil {
		return domain.Seller{}, fmt.Errorf("failed to load departments: %w", err)
	}

	entity, err := a.findSeller(ctx, in.ID)
	if err != nil {
		return domain.Seller{}, err
	}
	s.Populate(entity)

	f := s.Fields()
	setIfGiven(&f.Name, in.Name)
	setIfGiven(&f.Email, in.Email)
	setIfGiven(&f.BirthDate, in.BirthDate)
	setIfGiven(&f.BaseSalary, in.BaseSalary)
	if in.DepartmentID != 0 {
		refs := s.ReferenceData()
		i := refs.IndexOf(domain.Department{ID: domain.IntID(in.DepartmentID)})
		if i < 0 {
			return domain.Seller{}, fmt.Errorf("unknown department %d", in.DepartmentID)
		}
		d := refs.At(i)
		f.Department = &d
	}
	s.SetFields(f)

	return submit(ctx, s)
}

func setIfGiven(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func runSellerList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, false)
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer a.close()

	nf, err := a.cfg.NumberFormat()
	if err != nil {
		return err
	}
	sellers, err := a.sellers.FindAll(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range sellers {
		department := "-"
		if s.Department != nil {
			department = s.Department.Name
		}
		fmt.Fprintf(out, "%4d  %-30s %-30s %s %12s  %s\n",
			*s.ID, s.Name, s.Email, s.BirthDate.Format(a.cfg.Form.DateLayout), nf.Format(s.BaseSalary), department)
	}
	return nil
}
