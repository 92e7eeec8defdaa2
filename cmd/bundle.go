package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/swiftctx/swiftctx/constants/lipgloss"
	"github.com/swiftctx/swiftctx/utils"
)

// bundleCmd: swiftctx bundle
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Analyze a Swift file and print its dependency bundle.",
	Long: `The 'bundle' subcommand analyzes the target file, resolves its project
dependency closure, and prints a bundle: a front-matter header plus raw
content for the target followed by each dependency, shrunk to the token
budget. With --verbose the raw dependency list is printed first.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleBundleCommand(rootDependencies)
	},
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}

func handleBundleCommand(rootDependencies *RootDependencies) {
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true)

	spinnerAnalyze, _ := spinner.Start("Analyzing dependencies...")

	bundle, err := rootDependencies.Bundler.BuildBundle(rootDependencies.TargetFile)

	spinnerAnalyze.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	if rootDependencies.Config.Verbose {
		dependencies, err := rootDependencies.Bundler.Analyze(rootDependencies.TargetFile)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			os.Exit(1)
		}

		header := fmt.Sprintf("Dependencies of %s (%d)", filepath.Base(rootDependencies.TargetFile), len(dependencies))
		fmt.Println(lipgloss.BoxStyle.Render(header))
		for _, dependency := range dependencies {
			fmt.Println(lipgloss.Info.Render("  " + dependency))
		}
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Bundled %d files", len(dependencies)+1)))
		fmt.Println()
	}

	// Highlight only for human eyes; piped output stays raw.
	if rootDependencies.Config.Verbose && isatty.IsTerminal(os.Stdout.Fd()) {
		utils.PrintHighlighted(bundle, rootDependencies.Config.Theme)
	} else {
		fmt.Print(bundle)
	}
}
