package cmd

import (
	"fmt"
	"os"

	"repocat/pkg/collect"
	"repocat/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the base command executed when repocat is called with a
// target directory.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "repocat <directory>",
		Short: "repocat collects a directory tree's text files into one output file",
		Long: `repocat walks a directory tree and concatenates every text file into a
single repository_contents.txt written inside the target directory, skipping
ignored paths and binary files.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				if debugLogger, err := logging.Setup(true, "repocat"); err == nil {
					logger = debugLogger
				}
			}

			directory := args[0]
			info, err := os.Stat(directory)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("'%s' is not a valid directory", directory)
			}

			result, err := collect.Run(collect.Arguments{Directory: directory}, logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %s\n", result.OutputPath)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
