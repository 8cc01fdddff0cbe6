package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/arbor/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template string
		title    string
		target   string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter project",
		Long: `Create a starter project with an arbor.yaml config and a manifest.

Templates:
  ` + strings.Join(templates.List(), ", ") + `

Existing files are never overwritten unless --force is given.`,
		Example: `  arbor init
  arbor init site --template counter --title "My Site"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			tmpl, err := templates.Get(template)
			if err != nil {
				return err
			}
			if err := tmpl.Create(dir, templates.Config{
				Title:  title,
				Target: target,
				Force:  force,
			}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range tmpl.Paths() {
				fmt.Fprintf(out, "  %s\n", filepath.Join(dir, p))
			}
			success(out, "Created %s project in %s", tmpl.Name, dir)
			fmt.Fprintf(out, "\nNext: arbor serve %s\n", filepath.Join(dir, templates.ManifestFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Project template")
	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().StringVar(&target, "target", "", "Id of the mount element")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}
