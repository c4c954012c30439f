package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"skillboard/adapters/excel"
	"skillboard/domain/sheet"
	"skillboard/internal/structure"
)

func main() {
	var asJSON bool
	var sheetName string

	rootCmd := &cobra.Command{
		Use:   "skillboard-inspect [file]",
		Short: "Infer and print the structure of a skill template spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], sheetName, asJSON)
		},
	}
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the derived view as JSON")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "inspect only the named workbook sheet")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInspect(path, sheetName string, asJSON bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := excel.NewTemplateReader(filepath.Base(path))
	if !reader.Supported() {
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	sheets, err := reader.ReadWorkbook(f)
	if err != nil {
		return err
	}

	table := structure.DefaultKeywordTable()
	for _, sm := range sheets {
		if sheetName != "" && sm.Name != sheetName {
			continue
		}
		if len(sm.Matrix) == 0 {
			continue
		}
		view := structure.Derive(sheet.NewSheet(sm.Matrix), table)
		if asJSON {
			if err := printJSON(sm.Name, view); err != nil {
				return err
			}
			continue
		}
		printText(sm.Name, view)
	}
	return nil
}

func printJSON(name string, view sheet.StructureView) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{"sheet": name, "view": view})
}

func printText(name string, view sheet.StructureView) {
	fmt.Printf("Sheet %q: header at row %d, %d categories\n", name, view.HeaderRow, len(view.Categories))
	for role, col := range view.Roles {
		if col >= 0 {
			fmt.Printf("  role %-12s -> column %d\n", role, col)
		}
	}
	for _, cat := range view.Categories {
		fmt.Printf("  [%s] %d skills\n", cat.Name, len(cat.Skills))
		for _, rec := range cat.Skills {
			fmt.Printf("    row %3d  %s\n", rec.OriginalRow, rec.Value(view.Roles, sheet.RoleSkill))
		}
	}
}
