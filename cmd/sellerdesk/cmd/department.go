// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     cmd
// Description: Department commands: edit, save and list
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/tui/formeditor"
)

var (
	departmentID   int
	departmentName string
)

var departmentCmd = &cobra.Command{
	Use:     "department",
	Aliases: []string{"dept"},
	Short:   "Edit, save or list departments",
}

var departmentEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Open the department form",
	Long: `Opens the department form. Without an id a new department is created.

Keys:
  Tab         Next field
  Ctrl+S      Save
  Esc         Cancel`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDepartmentEdit,
}

var departmentSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a department without the form",
	Example: `  sellerdesk department save --name Books
  sellerdesk department save --id 3 --name Comics`,
	Args: cobra.NoArgs,
	RunE: runDepartmentSave,
}

var departmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments ordered by name",
	Args:  cobra.NoArgs,
	RunE:  runDepartmentList,
}

func init() {
	rootCmd.AddCommand(departmentCmd)
	departmentCmd.AddCommand(departmentEditCmd, departmentSaveCmd, departmentListCmd)

	departmentSaveCmd.Flags().IntVar(&departmentID, "id", 0, "id of the department to update")
	departmentSaveCmd.Flags().StringVar(&departmentName, "name", "", "department name")
}

func runDepartmentEdit(cmd *cobra.Command, args []string) error {
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

	entity, err := a.findDepartment(ctx, id)
	if err != nil {
		printError("failed to load department", err)
		return err
	}

	presenter := formeditor.NewPresenter()
	s := a.departmentSession(presenter)
	s.Populate(entity)

	saved, err := formeditor.Run(formeditor.Config{
		Editor:    formeditor.NewDepartmentEditor(s),
		Presenter: presenter,
	})
	if err != nil {
		return err
	}
	if saved {
		d, _ := s.Entity()
		fmt.Fprintf(cmd.OutOrStdout(), "Department saved: %s\n", d)
	}
	return nil
}

func runDepartmentSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, false)
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer a.close()

	d, err := saveDepartment(ctx, a, cmd.ErrOrStderr(), departmentID, departmentName)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Department saved: %s\n", d)
	return nil
}

func saveDepartment(ctx context.Context, a *app, out io.Writer, id int, name string) (domain.Department, error) {
	entity, err := a.findDepartment(ctx, id)
	if err != nil {
		return domain.Department{}, err
	}

	s := a.departmentSession(consolePresenter{out: out})
	s.Populate(entity)

	f := s.Fields()
	f.Name = name
	s.SetFields(f)

	return submit(ctx, s)
}

func runDepartmentList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, false)
	if err != nil {
		printError("failed to start", err)
		return err
	}
	defer a.close()

	departments, err := a.departments.FindAll(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, d := range departments {
		fmt.Fprintf(out, "%4d  %s\n", *d.ID, d.Name)
	}
	return nil
}

func idArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
