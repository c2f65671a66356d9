package cli

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/toyz/weld/internal/engine"
	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
	"github.com/toyz/weld/internal/parser"
	"github.com/toyz/weld/internal/templates"
	"github.com/toyz/weld/internal/utils"
)

// GeneratedFileName is the single output file weld maintains per package
const GeneratedFileName = "weld_gen.go"

// Generator orchestrates one weld run: scan package directories, extract
// annotated declarations, run each through the transformation engine, and
// write the per-package generated file.
type Generator struct {
	diag     *utils.DiagnosticSystem
	scanner  *Scanner
	resolver *ModuleResolver
	parser   *parser.Parser
	engine   *engine.Engine
}

// NewGenerator creates a generator; modulePath may be empty to discover the
// module from go.mod
func NewGenerator(diag *utils.DiagnosticSystem, modulePath string) *Generator {
	return &Generator{
		diag:     diag,
		scanner:  NewScanner(),
		resolver: NewModuleResolver(modulePath),
		parser:   parser.NewParser(),
		engine:   engine.New(),
	}
}

// Run processes every package matched by the patterns. Declarations fail
// independently: a bad annotation is reported and skipped while the rest of
// the package still generates.
func (g *Generator) Run(patterns []string) (*models.GenerationSummary, error) {
	summary := &models.GenerationSummary{
		RunID: uuid.New().String(),
	}

	dirs, err := g.scanner.Expand(patterns)
	if err != nil {
		return summary, err
	}

	g.diag.WeldHeader(fmt.Sprintf("Processing %d package(s) [run %s]", len(dirs), summary.RunID[:8]))

	for _, dir := range dirs {
		if err := g.processPackage(dir, summary); err != nil {
			return summary, err
		}
	}

	g.diag.Summary("Generation summary", map[string]interface{}{
		"packages":     summary.PackagesProcessed,
		"declarations": summary.DeclarationsFound,
		"interfaces":   summary.InterfacesEmitted,
		"mocks":        summary.MocksRequested,
		"files":        len(summary.GeneratedFiles),
		"failed":       summary.FailedDecls,
	})

	if summary.FailedDecls > 0 {
		return summary, fmt.Errorf("generation completed with %d failed declaration(s)", summary.FailedDecls)
	}
	g.diag.GenerationComplete()
	return summary, nil
}

func (g *Generator) processPackage(dir string, summary *models.GenerationSummary) error {
	metadata, errs := g.parser.ParseDirectory(dir)
	g.reportErrors(errs)
	if metadata == nil {
		summary.FailedDecls += errs.Count()
		return nil
	}
	summary.FailedDecls += errs.Count()
	summary.PackagesProcessed++
	summary.DeclarationsFound += len(metadata.Declarations)

	if len(metadata.Declarations) == 0 {
		g.diag.Verbose("no annotated declarations in %s", dir)
		return nil
	}

	g.diag.PhaseHeader(fmt.Sprintf("Package %s", metadata.PackageName))

	model := templates.FileModel{
		PackageName: metadata.PackageName,
	}

	for _, decl := range metadata.Declarations {
		output, err := g.engine.Transform(decl, metadata)
		if err != nil {
			summary.FailedDecls++
			g.reportError(err)
			continue
		}

		if decl.Config.Debug {
			g.dumpOutput(decl, output)
		}

		if output.Interface != nil {
			model.Interfaces = append(model.Interfaces, output.Interface)
			summary.InterfacesEmitted++
		}
		if output.Forwarding != nil {
			model.Forwardings = append(model.Forwardings, output.Forwarding)
		}
		if output.Split != nil {
			model.Splits = append(model.Splits, output.Split)
		}
		if output.Mock != nil && output.Mock.Requested {
			model.Mocks = append(model.Mocks, output.Mock)
			summary.MocksRequested++
		}

		g.diag.PhaseItem(fmt.Sprintf("%s %s", decl.Kind.String(), decl.Name))
	}

	if len(model.Interfaces) == 0 && len(model.Forwardings) == 0 && len(model.Splits) == 0 {
		return nil
	}
	model.NeedsEnv = len(model.Forwardings) > 0 || hasStaticSplit(model.Splits)

	importPath, err := g.resolver.ImportPath(dir)
	if err != nil {
		if len(model.Mocks) > 0 {
			return err
		}
		// the import path only feeds mock directives; fine to go without
		g.diag.Verbose("skipping import path resolution for %s: %v", dir, err)
	}
	model.ImportPath = importPath

	source, err := templates.Render(model)
	if err != nil {
		return err
	}

	outPath := filepath.Join(dir, GeneratedFileName)
	g.diag.PhaseProgress(fmt.Sprintf("Writing %s", outPath))
	if err := utils.FormatAndWriteGoFile(outPath, source); err != nil {
		return err
	}
	summary.GeneratedFiles = append(summary.GeneratedFiles, outPath)

	return nil
}

// dumpOutput prints the synthesized declarations for -Debug annotations
func (g *Generator) dumpOutput(decl models.Declaration, output *engine.Output) {
	if output.Interface != nil {
		g.diag.Debug("synthesized interface %s:", output.Interface.Name)
		for _, m := range output.Interface.Methods {
			g.diag.Debug("  %s", m.Signature())
		}
	}
	if output.Forwarding != nil {
		g.diag.Debug("delegation strategy for %s: %s", decl.Name, output.Forwarding.Strategy.String())
	}
	if output.Split != nil {
		g.diag.Debug("split %s against %s (%d inherent methods)",
			output.Split.ImplType, output.Split.TargetInterface, len(output.Split.Inherent))
	}
}

func (g *Generator) reportErrors(errs *errors.MultipleErrors) {
	if errs == nil {
		return
	}
	for _, err := range errs.Errors {
		g.reportError(err)
	}
}

func (g *Generator) reportError(err error) {
	if weldErr, ok := err.(errors.WeldError); ok {
		g.diag.Error("%s", weldErr.Error())
		for _, hint := range weldErr.Suggestions() {
			g.diag.Info("hint: %s", hint)
		}
		return
	}
	g.diag.Error("%s", err.Error())
}

func hasStaticSplit(splits []*models.SplitResult) bool {
	for _, s := range splits {
		if !s.Dynamic {
			return true
		}
	}
	return false
}
