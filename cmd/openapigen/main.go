// Command openapigen generates OpenAPI documents for Go interfaces
// annotated with openapi:gen directives.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ash-L2L/l2l-openapi/internal/cli"
	"github.com/Ash-L2L/l2l-openapi/internal/utils"
)

const name = "openapigen"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	config, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&config.Suffix, "suffix", config.Suffix, "Suffix of generated files")
	flags.StringVar(&config.BuildTag, "build-tag", config.BuildTag, "Build tag marking sources to re-emit in full")
	flags.StringVar(&config.Title, "title", config.Title, "info.title of generated documents (defaults to the interface name)")
	flags.StringVar(&config.Version, "version", config.Version, "info.version of generated documents")
	flags.BoolVar(&config.Verbose, "verbose", config.Verbose, "Enable verbose output and detailed error reporting")
	flags.BoolVar(&config.Quiet, "quiet", config.Quiet, "Only show errors")
	flags.BoolVar(&config.Clean, "clean", config.Clean, "Delete generated files instead of generating them")
	flags.BoolVar(&config.DryRun, "dry-run", config.DryRun, "Print generated files instead of writing them")
	help := flags.Bool("help", false, "Show help information")
	flags.Usage = func() { usage(flags, stderr) }

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *help {
		usage(flags, stderr)
		return 0
	}

	config.Paths = flags.Args()
	if len(config.Paths) == 0 {
		fmt.Fprintf(stderr, "Error: At least one path is required\n\n")
		usage(flags, stderr)
		return 1
	}

	var diagnostics *utils.DiagnosticSystem
	switch {
	case config.Quiet:
		diagnostics = utils.NewQuietDiagnostics()
	case config.Verbose:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	diagnostics.SetOutput(stdout, stderr)

	diagnostics.Section("OpenAPI document generator")

	if config.Clean {
		return clean(config, diagnostics)
	}

	if config.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Paths: %s", strings.Join(config.Paths, ", "))
		diagnostics.List("Suffix: %s", config.Suffix)
		diagnostics.List("Build tag: %s", config.BuildTag)
		diagnostics.List("Version: %s", config.Version)
		if config.Title != "" {
			diagnostics.List("Title: %s", config.Title)
		}
		if config.DryRun {
			diagnostics.List("Dry run: enabled")
		}
	}

	generator := cli.NewGenerator(config, diagnostics)
	generator.SetDryRunOutput(stdout)
	if err := generator.Run(); err != nil {
		diagnostics.Error("Generation failed: %v", firstLine(err))
		return 1
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Generation Complete!", map[string]interface{}{
		"Files scanned":      summary.FilesScanned,
		"Interfaces found":   summary.InterfacesFound,
		"Methods documented": summary.MethodsDocumented,
		"Files generated":    len(summary.GeneratedFiles),
	})
	if config.Verbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}
	diagnostics.GenerationComplete()
	return 0
}

func clean(config *cli.Config, diagnostics *utils.DiagnosticSystem) int {
	diagnostics.Info("Cleaning generated files...")
	removed, err := cli.NewCleaner(config.Suffix, config.DryRun).CleanGeneratedFiles(config.Paths)
	for _, file := range removed {
		diagnostics.Item("%s", file)
	}
	if err != nil {
		diagnostics.Error("Clean operation failed: %v", err)
		return 1
	}
	diagnostics.Success("Removed %d generated file(s)", len(removed))
	return 0
}

func firstLine(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}

func usage(flags *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] <paths...>\n\n", name)
	fmt.Fprintf(w, "OpenAPI document generator\n")
	fmt.Fprintf(w, "Generates OpenAPI documents for interfaces annotated with //openapi:gen.\n\n")
	fmt.Fprintf(w, "Options:\n")
	flags.PrintDefaults()
	fmt.Fprintf(w, "\nPath Patterns:\n")
	fmt.Fprintf(w, "  ./...              Process the current directory and all subdirectories\n")
	fmt.Fprintf(w, "  ./internal/rpc     Process only the specific directory\n")
	fmt.Fprintf(w, "  ./rpc/api.go       Process a single file\n")
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  Every option can be set as %s<OPTION>, for example %sBUILD_TAG.\n", cli.EnvPrefix, cli.EnvPrefix)
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s ./...                        # Generate everything recursively\n", name)
	fmt.Fprintf(w, "  %s -version 1.0.0 ./internal/...  # Set info.version\n", name)
	fmt.Fprintf(w, "  %s -dry-run ./rpc/api.go        # Print instead of writing\n", name)
	fmt.Fprintf(w, "  %s -clean ./...                 # Delete generated files\n", name)
}
