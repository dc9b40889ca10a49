package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Ash-L2L/l2l-openapi/internal/analyzer"
	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/generator"
	"github.com/Ash-L2L/l2l-openapi/internal/lower"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
	"github.com/Ash-L2L/l2l-openapi/internal/parser"
	"github.com/Ash-L2L/l2l-openapi/internal/utils"
)

// ErrGenerationFailed is returned when at least one file or interface
// could not be generated. The individual errors have been reported.
var ErrGenerationFailed = errors.New(errors.GenerationErrorCode, "generation failed")

// Generator coordinates the CLI generation process
type Generator struct {
	config         *Config
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	codeGenerator  *generator.Generator
	reporter       *DiagnosticReporter
	diagnostics    *utils.DiagnosticSystem
	// dryRunOut receives generated files in dry run mode
	dryRunOut io.Writer
	summary   models.GenerationSummary
}

// NewGenerator creates a CLI generator for config reporting through diagnostics
func NewGenerator(config *Config, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		config:         config,
		scanner:        NewDirectoryScanner(config.Suffix),
		moduleResolver: NewModuleResolver(),
		codeGenerator:  generator.NewGenerator(config.GeneratorOptions()),
		reporter:       NewDiagnosticReporter(diagnostics, config.Verbose),
		diagnostics:    diagnostics,
		dryRunOut:      os.Stdout,
	}
}

// SetDryRunOutput redirects files printed in dry run mode
func (g *Generator) SetDryRunOutput(w io.Writer) {
	g.dryRunOut = w
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() models.GenerationSummary {
	return g.summary
}

// Run generates a file for every annotated source file below the
// configured paths. A fatal directive misuse stops the run immediately and
// nothing further is written. Other failures skip the affected file and
// make Run return ErrGenerationFailed once every file was tried.
func (g *Generator) Run() error {
	start := time.Now()
	g.summary = models.GenerationSummary{GeneratedFiles: make([]string, 0)}

	g.diagnostics.Debug("Scanning paths: %v", g.config.Paths)
	files, err := g.scanner.SourceFiles(g.config.Paths)
	if err != nil {
		g.reporter.ReportError(err)
		return err
	}
	g.diagnostics.Verbose("Found %d source file(s)", len(files))

	// one parser per run so every position shares a file set
	p := parser.NewParser()
	failed := 0
	for _, path := range files {
		g.summary.FilesScanned++
		ok, err := g.processFile(p, path)
		if err != nil {
			g.reporter.ReportError(err)
			if errors.IsFatal(err) {
				return err
			}
		}
		if !ok {
			failed++
		}
	}

	g.diagnostics.Verbose("Finished in %s", time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		g.diagnostics.Error("%d file(s) failed", failed)
		return ErrGenerationFailed
	}
	return nil
}

// processFile parses, analyzes and generates one file. It reports false
// when the file could not be generated. Errors from individual interfaces
// are reported here; the returned error is the one that stopped the file.
func (g *Generator) processFile(p *parser.Parser, path string) (bool, error) {
	g.diagnostics.Debug("Parsing %s", path)
	file, err := p.ParseFile(path)
	if err != nil {
		return false, err
	}

	failed := !file.Errors.IsEmpty()
	if failed {
		g.reporter.ReportError(file.Errors)
	}
	if len(file.Asts) == 0 {
		return !failed, nil
	}
	g.summary.InterfacesFound += len(file.Asts)

	irs := make([]*models.Ir, 0, len(file.Asts))
	methods := 0
	for _, a := range file.Asts {
		model, err := analyzer.Analyze(a)
		if err != nil {
			g.reporter.ReportError(err)
			failed = true
			continue
		}
		g.diagnostics.Verbose("%s: %d method(s)", a.Name(), len(model.Methods))
		methods += len(model.Methods)
		irs = append(irs, lower.Lower(model))
	}
	// a file is generated only when every invocation in it succeeded
	if failed {
		return false, nil
	}

	if goMod, missing := g.moduleResolver.MissingRuntime(path); missing {
		g.reporter.ReportWarning("%s does not require %s; generated code will not build", goMod, RuntimeModule)
	}

	generated, err := g.codeGenerator.Generate(file, irs)
	if err != nil {
		return false, err
	}
	if err := g.emit(generated); err != nil {
		return false, err
	}
	g.summary.MethodsDocumented += methods
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, generated.FilePath)
	return true, nil
}

func (g *Generator) emit(file *models.GeneratedFile) error {
	if g.config.DryRun {
		fmt.Fprintf(g.dryRunOut, "// %s (%s)\n%s\n", file.FilePath, file.Mode, file.Content)
		return nil
	}
	g.diagnostics.Writing(file.FilePath)
	if err := utils.WriteGoFile(file.FilePath, file.Content); err != nil {
		return errors.WrapFileSystemError("write", file.FilePath, err)
	}
	return nil
}
