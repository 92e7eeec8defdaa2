package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swiftctx/swiftctx/bundler"
	"github.com/swiftctx/swiftctx/config"
	"github.com/swiftctx/swiftctx/constants/lipgloss"
	"github.com/swiftctx/swiftctx/swift_analyzer"
	analyzer_contracts "github.com/swiftctx/swiftctx/swift_analyzer/contracts"
	"github.com/swiftctx/swiftctx/token_optimizer"
	optimizer_contracts "github.com/swiftctx/swiftctx/token_optimizer/contracts"
)

// RootDependencies holds the wired collaborators subcommands work with.
type RootDependencies struct {
	Config    *config.Config
	Analyzer  analyzer_contracts.IDependencyAnalyzer
	Optimizer optimizer_contracts.ITokenOptimizer
	Bundler   *bundler.Bundler

	ProjectRoot string
	TargetFile  string
}

var rootCmd = &cobra.Command{
	Use:   "swiftctx",
	Short: "Bundle a Swift file and its project dependencies for LLM context.",
	Long: `swiftctx statically analyzes one Swift source file inside a project,
resolves the project files it depends on, and assembles their contents into a
single front-matter-annotated bundle under a token budget.`,
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

var (
	projectRootFlag string
	targetFileFlag  string
)

func init() {
	config.InitFlags(rootCmd)

	rootCmd.PersistentFlags().StringVarP(&projectRootFlag, "project", "p", "", "Path to the project root directory (required).")
	rootCmd.PersistentFlags().StringVarP(&targetFileFlag, "file", "f", "", "Path to the Swift file to analyze (required).")
}

// handleRootCommand loads configuration and wires the analyzer, optimizer
// and bundler for a subcommand invocation. It exits on unusable inputs.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		os.Exit(1)
	}

	cfg := config.LoadConfigs(rootCmd, cwd)

	if projectRootFlag == "" || targetFileFlag == "" {
		fmt.Println(lipgloss.Red.Render("Both --project and --file are required."))
		_ = cmd.Help()
		os.Exit(1)
	}

	analyzer := swift_analyzer.NewDependencyAnalyzer(projectRootFlag, cfg.SourceDir, cfg.FileExtension)
	optimizer := token_optimizer.NewTokenOptimizer(cfg.TokenBudget)

	return &RootDependencies{
		Config:      cfg,
		Analyzer:    analyzer,
		Optimizer:   optimizer,
		Bundler:     bundler.NewBundler(analyzer, optimizer),
		ProjectRoot: projectRootFlag,
		TargetFile:  targetFileFlag,
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}
