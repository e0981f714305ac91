package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const filePerm = 0o600

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the saved tabs as JSON",
	Long: `Write the saved tab tree as JSON to file, or to stdout when file is
omitted or "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the saved tabs with a JSON export",
	Long: `Replace the saved tab tree with the JSON in file ("-" reads stdin).

Containers and tabs without an id get one; tabs without a url are
dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) (retErr error) {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
		if err != nil {
			return fmt.Errorf("open export file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && retErr == nil {
				retErr = fmt.Errorf("close export file: %w", closeErr)
			}
		}()
		w = f
	}

	return a.UseCases.Transfer.Export(a.Ctx(), w)
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := a.UseCases.Transfer.Import(a.Ctx(), r)
	if err != nil {
		return err
	}
	if err := commit(a); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess(fmt.Sprintf(
		"Imported %d containers, %d tabs", len(data.Containers), data.TabCount())))
	return nil
}
