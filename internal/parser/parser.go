package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sort"

	"github.com/toyz/weld/internal/annotations"
	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// Parser extracts annotated declarations from Go source
type Parser struct {
	fileSet     *token.FileSet
	annotations *annotations.Parser
	registry    annotations.AnnotationRegistry
}

// NewParser creates a new declaration parser using the default annotation
// registry
func NewParser() *Parser {
	registry := annotations.DefaultRegistry()
	return &Parser{
		fileSet:     token.NewFileSet(),
		annotations: annotations.NewParser(registry),
		registry:    registry,
	}
}

// ParseSource parses source code from a string. Used by tests and by the
// generator for single-file processing.
func (p *Parser) ParseSource(filename, source string) (*models.PackageMetadata, *errors.MultipleErrors) {
	errs := errors.NewMultipleErrors()

	file, err := parser.ParseFile(p.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		errs.Add(errors.Wrap(errors.SyntaxErrorCode, "failed to parse source", err).
			WithLocation(errors.SourceLocation{File: filename}))
		return nil, errs
	}

	metadata := p.processFiles(file.Name.Name, "./", map[string]*ast.File{filename: file}, errs)
	return metadata, errs
}

// ParseDirectory scans one package directory for annotated declarations.
// Declarations are independent: a failed declaration is recorded as a
// diagnostic and skipped, it never aborts its neighbors.
func (p *Parser) ParseDirectory(path string) (*models.PackageMetadata, *errors.MultipleErrors) {
	errs := errors.NewMultipleErrors()

	pkgs, err := parser.ParseDir(p.fileSet, path, nil, parser.ParseComments)
	if err != nil {
		errs.Add(errors.Wrap(errors.FileSystemErrorCode,
			fmt.Sprintf("failed to parse directory %s", path), err))
		return nil, errs
	}

	// test files form a second package; skip them
	var pkg *ast.Package
	var packageName string
	for name, candidate := range pkgs {
		if len(name) > len("_test") && name[len(name)-len("_test"):] == "_test" {
			continue
		}
		if pkg != nil {
			errs.Add(errors.Newf(errors.ValidationErrorCode,
				"multiple packages found in directory %s", path))
			return nil, errs
		}
		pkg = candidate
		packageName = name
	}
	if pkg == nil {
		errs.Add(errors.Newf(errors.ValidationErrorCode,
			"no Go packages found in directory %s", path))
		return nil, errs
	}

	metadata := p.processFiles(packageName, path, pkg.Files, errs)
	return metadata, errs
}

// processFiles walks the package's files in deterministic order and builds
// the declaration list
func (p *Parser) processFiles(packageName, packagePath string, files map[string]*ast.File, errs *errors.MultipleErrors) *models.PackageMetadata {
	metadata := &models.PackageMetadata{
		PackageName: packageName,
		PackagePath: packagePath,
	}

	fileNames := make([]string, 0, len(files))
	for name := range files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	methodsByType := collectMethods(files)

	for _, fileName := range fileNames {
		file := files[fileName]
		p.processModuleAnnotation(file, metadata, errs)

		for _, decl := range file.Decls {
			switch node := decl.(type) {
			case *ast.FuncDecl:
				p.processFuncDecl(node, metadata, errs)
			case *ast.GenDecl:
				p.processGenDecl(node, methodsByType, metadata, errs)
			}
		}
	}

	return metadata
}

// collectMethods indexes every method declaration by its receiver's base
// type name, across all files of the package
func collectMethods(files map[string]*ast.File) map[string][]*ast.FuncDecl {
	methods := make(map[string][]*ast.FuncDecl)
	fileNames := make([]string, 0, len(files))
	for name := range files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	for _, fileName := range fileNames {
		for _, decl := range files[fileName].Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}
			if name := receiverTypeName(fn.Recv.List[0].Type); name != "" {
				methods[name] = append(methods[name], fn)
			}
		}
	}
	return methods
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	default:
		return ""
	}
}

// processModuleAnnotation handles a //weld::module annotation on the file's
// package clause, grouping the file's top-level functions
func (p *Parser) processModuleAnnotation(file *ast.File, metadata *models.PackageMetadata, errs *errors.MultipleErrors) {
	annotation, ok := p.findAnnotation(file.Doc, errs)
	if !ok {
		return
	}
	if annotation.Kind != annotations.ModuleAnnotation {
		errs.Add(errors.Newf(errors.ValidationErrorCode,
			"only //weld::module may annotate a package clause, got //weld::%s", annotation.Kind.String()).
			WithLocation(annotation.Location))
		return
	}

	cfg, err := annotations.Resolve(annotation, p.registry)
	if err != nil {
		errs.Add(asWeldError(err))
		return
	}

	decl := models.Declaration{
		Kind:     models.ModuleDecl,
		Name:     annotation.Name,
		Config:   cfg,
		Location: annotation.Location,
	}

	for _, d := range file.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok || fn.Recv != nil {
			continue
		}
		// only group-visible functions become interface methods
		if !fn.Name.IsExported() {
			continue
		}
		model, err := ExtractSignature(fn, p.fileSet, cfg.NoDeps)
		if err != nil {
			errs.Add(asWeldError(err))
			return
		}
		decl.Models = append(decl.Models, model)
	}

	metadata.Declarations = append(metadata.Declarations, decl)
}

// processFuncDecl handles a //weld::func annotation on a function
func (p *Parser) processFuncDecl(fn *ast.FuncDecl, metadata *models.PackageMetadata, errs *errors.MultipleErrors) {
	annotation, ok := p.findAnnotation(fn.Doc, errs)
	if !ok {
		return
	}
	if annotation.Kind != annotations.FuncAnnotation {
		errs.Add(errors.Newf(errors.ValidationErrorCode,
			"//weld::%s cannot annotate a function", annotation.Kind.String()).
			WithLocation(annotation.Location))
		return
	}
	if fn.Recv != nil {
		errs.Add(errors.New(errors.ValidationErrorCode,
			"//weld::func cannot annotate a method; annotate the type with //weld::impl instead").
			WithLocation(locationOf(p.fileSet, fn.Pos())))
		return
	}

	cfg, err := annotations.Resolve(annotation, p.registry)
	if err != nil {
		errs.Add(asWeldError(err))
		return
	}

	model, err := ExtractSignature(fn, p.fileSet, cfg.NoDeps)
	if err != nil {
		errs.Add(asWeldError(err))
		return
	}

	metadata.Declarations = append(metadata.Declarations, models.Declaration{
		Kind:     models.FuncDecl,
		Name:     annotation.Name,
		Config:   cfg,
		Location: annotation.Location,
		Models:   []*models.SignatureModel{model},
	})
}

// processGenDecl handles //weld::interface and //weld::impl annotations on
// type declarations
func (p *Parser) processGenDecl(decl *ast.GenDecl, methodsByType map[string][]*ast.FuncDecl, metadata *models.PackageMetadata, errs *errors.MultipleErrors) {
	if decl.Tok != token.TYPE {
		return
	}
	for _, spec := range decl.Specs {
		typeSpec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}
		doc := typeSpec.Doc
		if doc == nil {
			doc = decl.Doc
		}
		annotation, found := p.findAnnotation(doc, errs)
		if !found {
			continue
		}

		switch target := typeSpec.Type.(type) {
		case *ast.InterfaceType:
			p.processInterfaceDecl(annotation, typeSpec, target, metadata, errs)
		case *ast.StructType:
			p.processImplDecl(annotation, typeSpec, methodsByType, metadata, errs)
		default:
			errs.Add(errors.Newf(errors.ValidationErrorCode,
				"//weld::%s must annotate an interface or struct type", annotation.Kind.String()).
				WithLocation(annotation.Location))
		}
	}
}

func (p *Parser) processInterfaceDecl(annotation *annotations.ParsedAnnotation, typeSpec *ast.TypeSpec, iface *ast.InterfaceType, metadata *models.PackageMetadata, errs *errors.MultipleErrors) {
	if annotation.Kind != annotations.InterfaceAnnotation {
		errs.Add(errors.Newf(errors.ValidationErrorCode,
			"//weld::%s cannot annotate an interface type", annotation.Kind.String()).
			WithLocation(annotation.Location))
		return
	}

	cfg, err := annotations.Resolve(annotation, p.registry)
	if err != nil {
		errs.Add(asWeldError(err))
		return
	}

	def := &models.InterfaceDefinition{
		Name:     typeSpec.Name.Name,
		Exported: typeSpec.Name.IsExported(),
	}
	for _, field := range iface.Methods.List {
		funcType, ok := field.Type.(*ast.FuncType)
		if !ok {
			// embedded interfaces are not part of the delegation surface
			continue
		}
		for _, name := range field.Names {
			def.Methods = append(def.Methods, methodSpecFromFuncType(name.Name, funcType))
		}
	}

	metadata.RecordInterface(def)
	metadata.Declarations = append(metadata.Declarations, models.Declaration{
		Kind:      models.InterfaceDecl,
		Name:      typeSpec.Name.Name,
		Config:    cfg,
		Location:  annotation.Location,
		Interface: def,
	})
}

func (p *Parser) processImplDecl(annotation *annotations.ParsedAnnotation, typeSpec *ast.TypeSpec, methodsByType map[string][]*ast.FuncDecl, metadata *models.PackageMetadata, errs *errors.MultipleErrors) {
	if annotation.Kind != annotations.ImplAnnotation {
		errs.Add(errors.Newf(errors.ValidationErrorCode,
			"//weld::%s cannot annotate a struct type", annotation.Kind.String()).
			WithLocation(annotation.Location))
		return
	}

	cfg, err := annotations.Resolve(annotation, p.registry)
	if err != nil {
		errs.Add(asWeldError(err))
		return
	}

	decl := models.Declaration{
		Kind:       models.ImplDecl,
		Name:       typeSpec.Name.Name,
		Config:     cfg,
		Location:   annotation.Location,
		ImplTarget: annotation.Name,
	}

	for _, fn := range methodsByType[typeSpec.Name.Name] {
		var method models.InherentMethod
		method.Name = fn.Name.Name
		for _, param := range flattenParams(fn.Type.Params) {
			method.Params = append(method.Params, models.Param{Name: param.name, Type: param.typ})
		}
		if fn.Type.Results != nil {
			for _, field := range fn.Type.Results.List {
				typ := types.ExprString(field.Type)
				n := len(field.Names)
				if n == 0 {
					n = 1
				}
				for i := 0; i < n; i++ {
					method.Results = append(method.Results, typ)
				}
			}
		}
		decl.ImplMethods = append(decl.ImplMethods, method)
	}

	metadata.Declarations = append(metadata.Declarations, decl)
}

// methodSpecFromFuncType converts a hand-written interface method into a
// MethodSpec, synthesizing parameter names where the source left them out
func methodSpecFromFuncType(name string, funcType *ast.FuncType) models.MethodSpec {
	spec := models.MethodSpec{Name: name}
	for i, param := range flattenParams(funcType.Params) {
		paramName := param.name
		if paramName == "" || paramName == "_" {
			paramName = fmt.Sprintf("p%d", i)
		}
		spec.Params = append(spec.Params, models.Param{Name: paramName, Type: param.typ})
	}
	if funcType.Results != nil {
		for _, field := range funcType.Results.List {
			typ := types.ExprString(field.Type)
			n := len(field.Names)
			if n == 0 {
				n = 1
			}
			for i := 0; i < n; i++ {
				spec.Results = append(spec.Results, typ)
			}
		}
	}
	if len(spec.Params) > 0 && spec.Params[0].Type == "context.Context" {
		spec.Async = true
	}
	return spec
}

// findAnnotation scans a doc comment group for a weld annotation. More than
// one weld annotation on a single declaration is rejected.
func (p *Parser) findAnnotation(doc *ast.CommentGroup, errs *errors.MultipleErrors) (*annotations.ParsedAnnotation, bool) {
	if doc == nil {
		return nil, false
	}

	var parsed *annotations.ParsedAnnotation
	for _, comment := range doc.List {
		if !annotations.IsAnnotation(comment.Text) {
			continue
		}
		loc := locationOf(p.fileSet, comment.Pos())
		annotation, err := p.annotations.ParseAnnotation(comment.Text, loc)
		if err != nil {
			errs.Add(asWeldError(err))
			return nil, false
		}
		if parsed != nil {
			errs.Add(errors.New(errors.ValidationErrorCode,
				"declaration carries more than one weld annotation").WithLocation(loc))
			return nil, false
		}
		parsed = annotation
	}

	return parsed, parsed != nil
}

func asWeldError(err error) errors.WeldError {
	if weldErr, ok := err.(errors.WeldError); ok {
		return weldErr
	}
	return errors.Wrap(errors.UnknownErrorCode, err.Error(), err)
}
