package callbackreturn

import (
	"go/ast"
	"reflect"

	"github.com/AdamBrianBright/callbackreturn/internal/config"
	"github.com/AdamBrianBright/callbackreturn/internal/gosyntax"
	"github.com/AdamBrianBright/callbackreturn/internal/helpers"
	"github.com/AdamBrianBright/callbackreturn/internal/log"
	"github.com/AdamBrianBright/callbackreturn/internal/rule"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const _doc = `Checks that calls to callback functions are followed by the end of the enclosing function.

A call to a configured callback name (default "callback") must be returned, be immediately
followed by a return statement, or be the last statement of its function body.`

var Analyzer = &analysis.Analyzer{
	Name:       "callbackreturn",
	Doc:        _doc,
	URL:        "https://github.com/AdamBrianBright/callbackreturn",
	Run:        helpers.WrapRun(run),
	ResultType: reflect.TypeOf((*helpers.Result[*Result])(nil)),
	Requires:   []*analysis.Analyzer{inspect.Analyzer, config.Analyzer},
}

func run(pass *analysis.Pass) (*Result, error) {
	conf, err := helpers.GetResult[*config.Config](pass, config.Analyzer)
	if err != nil {
		return nil, err
	}
	defer log.Sync()

	r, err := conf.Rule()
	if err != nil {
		return nil, err
	}
	if pass.Pkg != nil {
		log.Log("Run %s with names %v\n", pass.Pkg.Path(), r.Names())
	}

	result := &Result{}
	inspectResult := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	inspectResult.Preorder([]ast.Node{(*ast.File)(nil)}, func(n ast.Node) {
		file, ok := n.(*ast.File)
		if !ok || file == nil {
			return
		}
		result.CheckFile(pass, r, file)
	})

	return result, nil
}

// CheckFile runs the rule over a single file and reports every violation.
func (res *Result) CheckFile(pass *analysis.Pass, r *rule.Rule, file *ast.File) {
	tokFile := pass.Fset.File(file.Pos())
	if tokFile == nil {
		return
	}
	name := tokFile.Name()
	if ast.IsGenerated(file) {
		log.Log("Skipping generated file %s\n", name)
		res.Skipped = append(res.Skipped, name)
		return
	}

	log.Log("Checking %s\n", name)
	diags := r.Check(gosyntax.Convert(pass.Fset, file))
	res.Checked = append(res.Checked, name)

	for _, d := range diags {
		log.Log("Report %s:%s: %s\n", name, d.Pos, d.Message)
		pass.Report(analysis.Diagnostic{
			Pos:      tokFile.Pos(d.Pos.Offset),
			Category: rule.ID,
			Message:  d.Message,
		})
		res.Diagnostics = append(res.Diagnostics, FileDiagnostic{File: name, Diagnostic: d})
	}
}
