// Command cfdiclean removes non-SAT content from a CFDI document.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/cfdicleaner"
)

var (
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cfdiclean [file]",
	Short: "Remove non-SAT content from a CFDI document",
	Long: `Reads a CFDI comprobante, strips Addenda nodes, foreign namespaces,
and broken schemaLocation entries, and writes the cleaned document.
Reads from stdin when no file is given.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runClean,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the cleaned document to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every change the cleaner makes")
}

func runClean(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	var opts []cfdicleaner.Option
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		opts = append(opts, cfdicleaner.WithLogger(logger))
	}

	clean, err := cfdicleaner.Clean(string(source), opts...)
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), clean)
		return nil
	}
	return os.WriteFile(outputPath, []byte(clean), 0o644)
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
