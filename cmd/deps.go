package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swiftctx/swiftctx/constants/lipgloss"
)

// depsCmd: swiftctx deps
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Print the resolved dependency closure of a Swift file.",
	Long: `The 'deps' subcommand analyzes the target file and prints the resolved
transitive dependency list, one canonical file path per line, without
rendering the bundle. Use --direct for only first-degree dependencies and
--stats for analyzer cache statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		direct, _ := cmd.Flags().GetBool("direct")
		stats, _ := cmd.Flags().GetBool("stats")

		rootDependencies := handleRootCommand(cmd)
		handleDepsCommand(rootDependencies, direct, stats)
	},
}

func init() {
	depsCmd.Flags().Bool("direct", false, "Print only direct dependencies, without transitive closure")
	depsCmd.Flags().BoolP("stats", "s", false, "Show analyzer cache statistics after the list")

	rootCmd.AddCommand(depsCmd)
}

func handleDepsCommand(rootDependencies *RootDependencies, direct bool, showStats bool) {
	dependencies, err := rootDependencies.Bundler.Analyze(rootDependencies.TargetFile)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	if direct {
		dependencies, err = rootDependencies.Analyzer.DirectDependencies(rootDependencies.TargetFile)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}
	}

	header := fmt.Sprintf("Dependencies of %s (%d)", filepath.Base(rootDependencies.TargetFile), len(dependencies))
	fmt.Println(lipgloss.BoxStyle.Render(header))
	for _, dependency := range dependencies {
		fmt.Println(dependency)
	}

	if showStats {
		fmt.Println()
		fmt.Println(lipgloss.Info.Render("Cache Statistics:"))
		cacheStats := rootDependencies.Analyzer.CacheStats()
		if hits, ok := cacheStats["cache_hits"].(int64); ok {
			fmt.Printf("  Hits: %d\n", hits)
		}
		if misses, ok := cacheStats["cache_misses"].(int64); ok {
			fmt.Printf("  Misses: %d\n", misses)
		}
		if hitRate, ok := cacheStats["hit_rate_percent"].(float64); ok {
			fmt.Printf("  Hit Rate: %.1f%%\n", hitRate)
		}
		if files, ok := cacheStats["cached_files"].(int); ok {
			fmt.Printf("  Cached Files: %d\n", files)
		}
	}
}
