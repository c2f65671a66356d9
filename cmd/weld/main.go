package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/toyz/weld/internal/annotations"
	"github.com/toyz/weld/internal/cli"
	"github.com/toyz/weld/internal/utils"
)

var version = "dev"

var (
	flagModule  string
	flagVerbose bool
	flagQuiet   bool
)

func main() {
	root := &cobra.Command{
		Use:     "weld [packages]",
		Short:   "Generate dependency interfaces and forwarding implementations from annotations",
		Long: `Weld turns annotated functions, modules, interfaces, and implementation
blocks into dependency interfaces plus the forwarding methods that wire the
environment wrapper to them. Each processed package gets a single
weld_gen.go maintained by the tool.`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"./..."}
			}
			generator := cli.NewGenerator(diagnostics(), flagModule)
			_, err := generator.Run(patterns)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagModule, "module", "", "module path override when no go.mod is reachable")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose diagnostic output")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only report errors")

	root.AddCommand(cleanCommand(), schemasCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "weld: %v\n", err)
		os.Exit(1)
	}
}

func cleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [packages]",
		Short: "Remove generated weld_gen.go files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"./..."}
			}
			return cli.NewCleaner(diagnostics()).Clean(patterns)
		},
	}
}

func schemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the annotation kinds and their options",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, schema := range annotations.GetBuiltinSchemas() {
				fmt.Printf("//weld::%s\n", schema.Kind.String())
				fmt.Printf("  %s\n", schema.Description)

				keys := make([]string, 0, len(schema.Parameters))
				for key := range schema.Parameters {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Printf("  -%s: %s\n", key, schema.Parameters[key].Description)
				}
				for _, example := range schema.Examples {
					fmt.Printf("  e.g. %s\n", example)
				}
				fmt.Println()
			}
		},
	}
}

func diagnostics() *utils.DiagnosticSystem {
	switch {
	case flagQuiet:
		return utils.NewQuietDiagnostics()
	case flagVerbose:
		return utils.NewVerboseDiagnostics()
	default:
		return utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
}
