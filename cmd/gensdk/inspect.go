package main

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/spacedriveapp/gensdk/dmmf"
	"github.com/spacedriveapp/gensdk/query"
	"github.com/spacedriveapp/gensdk/schema"
)

var inspectQuery string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the metadata document derived from the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return err
		}
		input, err := project.engineInput()
		if err != nil {
			return err
		}

		sch, err := schema.Parse(input.Datamodel)
		if err != nil {
			return fmt.Errorf("parse schema: %w", err)
		}
		doc := dmmf.FromParts(query.Build(sch, true))

		tree, err := doc.Interface()
		if err != nil {
			return err
		}

		if inspectQuery == "" {
			fmt.Println(oj.JSON(tree, 2))
			return nil
		}

		expr, err := jp.ParseString(inspectQuery)
		if err != nil {
			return fmt.Errorf("invalid jsonpath %q: %w", inspectQuery, err)
		}
		for _, match := range expr.Get(tree) {
			fmt.Println(oj.JSON(match, 2))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectQuery, "path", "", "JSONPath selecting part of the document")
	rootCmd.AddCommand(inspectCmd)
}
