// Command gensdk is the reference generator binary: invoked bare it serves
// the plugin protocol over standard streams (how a host launches a
// generator), and it carries offline subcommands for developing against a
// schema without a host.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spacedriveapp/gensdk"
	"github.com/spacedriveapp/gensdk/internal/scaffold"
)

const (
	generatorName = "Scaffold Generator"
	defaultOutput = "./generated"
)

var (
	schemaPath  string
	outputPath  string
	formatName  string
	projectPath string
)

var rootCmd = &cobra.Command{
	Use:   "gensdk",
	Short: "Scaffold generator plugin for schema engines",
	Long: "Serves the generator plugin protocol on stdin/stderr using the built-in\n" +
		"scaffold generator. Hosts launch this binary directly; the subcommands\n" +
		"exist for offline development against a schema file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		gensdk.New(scaffold.Generate, generatorName, defaultOutput).Run()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema file")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output path (overrides the project file)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "", "output layout: folder or file")
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "gensdk.yml", "project config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
