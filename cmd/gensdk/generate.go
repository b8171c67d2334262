package main

import (
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/spacedriveapp/gensdk"
	"github.com/spacedriveapp/gensdk/internal/scaffold"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the generation pipeline offline against the local schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return err
		}
		input, err := project.engineInput()
		if err != nil {
			return err
		}

		gen := gensdk.New(scaffold.Generate, generatorName, defaultOutput)

		start := time.Now()
		fmt.Printf("Generating %s from %s...\n", project.Output, project.Schema)
		if err := gen.Execute(osfs.New("/"), input); err != nil {
			return err
		}
		fmt.Printf("Done in %v.\n", time.Since(start))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
