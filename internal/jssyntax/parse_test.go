package jssyntax

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.Program {
	t.Helper()
	prog, err := Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return prog
}

func calls(n syntax.Node) []*syntax.Call {
	var out []*syntax.Call
	syntax.Inspect(n, func(n syntax.Node) bool {
		if c, ok := n.(*syntax.Call); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}

func TestParseFunctionShape(t *testing.T) {
	prog := parse(t, "function a(err) { if (err) { return callback(err); } callback(); }")
	require.Len(t, prog.Body, 1)

	fn, ok := prog.Body[0].(*syntax.Function)
	require.True(t, ok)
	require.Equal(t, "a", fn.Name)
	require.Equal(t, syntax.FuncDeclaration, fn.Func)
	require.Len(t, fn.Params, 1)

	body, ok := fn.Body.(*syntax.Block)
	require.True(t, ok)
	require.Len(t, body.List, 2)

	ifStmt, ok := body.List[0].(*syntax.If)
	require.True(t, ok)
	require.IsType(t, &syntax.Ident{}, ifStmt.Cond, "parentheses are unwrapped")
	then := ifStmt.Then.(*syntax.Block)
	ret := then.List[0].(*syntax.Return)
	require.Len(t, ret.Results, 1)
	require.IsType(t, &syntax.Call{}, ret.Results[0])

	stmt, ok := body.List[1].(*syntax.ExprStmt)
	require.True(t, ok)
	call := stmt.X.(*syntax.Call)
	require.Equal(t, "callback", call.Fun.(*syntax.Ident).Name)
	require.Equal(t, syntax.Pos{Offset: 53, Line: 1, Column: 54}, call.Pos)
}

func TestParseFunctionKinds(t *testing.T) {
	for _, tc := range []struct {
		src  string
		kind syntax.FuncKind
	}{
		{src: "function a() {}", kind: syntax.FuncDeclaration},
		{src: "function* a() {}", kind: syntax.FuncDeclaration},
		{src: "var a = function() {};", kind: syntax.FuncExpression},
		{src: "var a = err => callback(err);", kind: syntax.FuncArrow},
		{src: "var a = (err) => { callback(err); };", kind: syntax.FuncArrow},
		{src: "class x { horse() { callback(); } }", kind: syntax.FuncMethod},
		{src: "var x = { x(err) { callback(err); } };", kind: syntax.FuncMethod},
	} {
		t.Run(tc.src, func(t *testing.T) {
			var fns []*syntax.Function
			syntax.Inspect(parse(t, tc.src), func(n syntax.Node) bool {
				if fn, ok := n.(*syntax.Function); ok {
					fns = append(fns, fn)
				}
				return true
			})
			require.Len(t, fns, 1)
			require.Equal(t, tc.kind, fns[0].Func)
		})
	}
}

func TestParseArrowExpressionBody(t *testing.T) {
	var fn *syntax.Function
	syntax.Inspect(parse(t, "var x = err => callback(err)"), func(n syntax.Node) bool {
		if f, ok := n.(*syntax.Function); ok {
			fn = f
		}
		return true
	})
	require.NotNil(t, fn)
	require.Len(t, fn.Params, 1)
	require.IsType(t, &syntax.Call{}, fn.Body)
}

func TestParseLogicalGuard(t *testing.T) {
	prog := parse(t, "cb && cb();")
	stmt := prog.Body[0].(*syntax.ExprStmt)
	logical, ok := stmt.X.(*syntax.Logical)
	require.True(t, ok)
	require.Equal(t, "&&", logical.Op)
	require.IsType(t, &syntax.Ident{}, logical.X)
	require.IsType(t, &syntax.Call{}, logical.Y)

	other := parse(t, "a + cb();").Body[0].(*syntax.ExprStmt)
	require.IsType(t, &syntax.Other{}, other.X)
}

func TestParseSwitch(t *testing.T) {
	prog := parse(t, "switch (x) { case 'a': callback(); return; default: next(); }")
	sw, ok := prog.Body[0].(*syntax.Switch)
	require.True(t, ok)
	require.Len(t, sw.Tag, 1)
	require.Len(t, sw.Cases, 2)

	require.Len(t, sw.Cases[0].Values, 1)
	require.Len(t, sw.Cases[0].Body, 2)
	require.IsType(t, &syntax.ExprStmt{}, sw.Cases[0].Body[0])
	require.IsType(t, &syntax.Return{}, sw.Cases[0].Body[1])

	require.Empty(t, sw.Cases[1].Values)
	require.Len(t, sw.Cases[1].Body, 1)
}

func TestParseLoops(t *testing.T) {
	for _, src := range []string{
		"for (var i = 0; i < 10; i++) { move(); }",
		"for (var i = 0; i < 10; i++) move();",
		"while (x) { move(); }",
		"do { move(); } while (x);",
		"for (const k in obj) { move(); }",
	} {
		t.Run(src, func(t *testing.T) {
			loop, ok := parse(t, src).Body[0].(*syntax.Loop)
			require.True(t, ok)
			require.NotNil(t, loop.Body)
			require.NotEmpty(t, loop.Header)

			found := calls(loop.Body)
			require.Len(t, found, 1)
			require.Equal(t, "move", found[0].Fun.(*syntax.Ident).Name)
		})
	}
}

func TestParseCommentsDropped(t *testing.T) {
	prog := parse(t, "function a() { /* one */ callback(); // two\n return; }")
	body := prog.Body[0].(*syntax.Function).Body.(*syntax.Block)
	require.Len(t, body.List, 2)
	require.IsType(t, &syntax.ExprStmt{}, body.List[0])
	require.IsType(t, &syntax.Return{}, body.List[1])

	ret := parse(t, "function a() { return /* c */ callback(); }").
		Body[0].(*syntax.Function).Body.(*syntax.Block).List[0].(*syntax.Return)
	require.Len(t, ret.Results, 1)
	require.IsType(t, &syntax.Call{}, ret.Results[0])
}

func TestParseMemberCallee(t *testing.T) {
	found := calls(parse(t, "this.callback(); obj['cb']();"))
	require.Len(t, found, 2)
	require.IsType(t, &syntax.Member{}, found[0].Fun)
	require.IsType(t, &syntax.Member{}, found[1].Fun)
}

func TestParsePositions(t *testing.T) {
	found := calls(parse(t, "function x(err) { if (err) {\n log();\n callback(err); } }"))
	require.Len(t, found, 2)
	require.Equal(t, 2, found[0].Pos.Line)
	require.Equal(t, 2, found[0].Pos.Column)
	require.Equal(t, 3, found[1].Pos.Line)
	require.Equal(t, 2, found[1].Pos.Column)

	// Columns count runes, not bytes.
	found = calls(parse(t, "var s = 'héllo'; callback();"))
	require.Len(t, found, 1)
	require.Equal(t, 18, found[0].Pos.Column)
	require.Equal(t, 18, found[0].Pos.Offset)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), []byte("function ( { callback(); "))
	require.ErrorIs(t, err, ErrSyntax)
}

func TestParseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, []byte("callback();"))
	require.ErrorIs(t, err, context.Canceled)
}
