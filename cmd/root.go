package cmd

import (
	"context"

	"gitfeed/pkg/ingest"
	"gitfeed/pkg/logging"
	"gitfeed/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	rootArgs ingest.Arguments
)

// RootCmd is the base command: it clones the given repository and
// serializes its textual contents into a single artifact.
var RootCmd = &cobra.Command{
	Use:   "gitfeed <repository-url>",
	Short: "gitfeed serializes a git repository into a single text file",
	Long: `gitfeed clones a remote git repository and concatenates its textual
contents, with per-file path headers, into one flat document suitable for
pasting into an LLM prompt. A directory-structure file is written alongside
unless suppressed.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if rootArgs.Verbose {
			v := version.Get()
			if err := logging.Setup(true, "gitfeed", v.Version); err != nil {
				return err
			}
			logger = logging.Logger
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rootArgs.RepoURL = args[0]
		return ingest.Run(cmd.Context(), rootArgs, logger)
	},
}

// Execute runs the root command with the given context and logger.
// The context carries interrupt cancellation from main.
func Execute(ctx context.Context, l *zap.Logger) error {
	logger = l
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	RootCmd.Flags().StringSliceVar(&rootArgs.ExcludeExts, "exclude-ext", nil,
		"file extensions to exclude from the output (leading dot optional)")
	RootCmd.Flags().StringSliceVar(&rootArgs.ExcludePatterns, "exclude", nil,
		"gitignore-style patterns to exclude from the output")
	RootCmd.Flags().Float64Var(&rootArgs.MaxFileSizeMB, "max-file-size", 0,
		"maximum file size in megabytes to include (0 = unbounded)")
	RootCmd.Flags().StringVarP(&rootArgs.Output, "output", "o", "",
		"destination for the combined output ('-' for stdout, default <repo>/contents.txt)")
	RootCmd.Flags().StringVar(&rootArgs.Tree, "tree", "",
		"destination for the directory structure (default <repo>/directory_structure.txt)")
	RootCmd.Flags().BoolVar(&rootArgs.NoTree, "no-tree", false,
		"do not write the directory structure file")
	RootCmd.PersistentFlags().BoolVarP(&rootArgs.Verbose, "verbose", "v", false,
		"enable detailed logging, including skipped file information")
}
