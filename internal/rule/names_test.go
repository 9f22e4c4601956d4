package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdamBrianBright/callbackreturn/internal/syntax"
)

func TestNameSet(t *testing.T) {
	set, err := NewNameSet([]string{"cb", "next", "cb"})
	require.NoError(t, err)
	require.Equal(t, []string{"cb", "next"}, set.Names())
	require.True(t, set.Contains("cb"))
	require.False(t, set.Contains("CB"))
	require.False(t, set.Contains("callback"))
}

func TestNameSetInvalid(t *testing.T) {
	for _, name := range []string{"", "a.b", "1cb", "cb()", "c b"} {
		_, err := NewNameSet([]string{name})
		require.Error(t, err, name)
	}
}

func TestNameSetEmpty(t *testing.T) {
	set, err := NewNameSet(nil)
	require.NoError(t, err)
	_, ok := set.Match(&syntax.Call{Fun: &syntax.Ident{Name: "callback"}})
	require.False(t, ok)
}

func TestNameSetMatch(t *testing.T) {
	set, err := NewNameSet([]string{"callback"})
	require.NoError(t, err)

	name, ok := set.Match(&syntax.Call{Fun: &syntax.Ident{Name: "callback"}})
	require.True(t, ok)
	require.Equal(t, "callback", name)

	_, ok = set.Match(&syntax.Call{Fun: &syntax.Member{
		X:   &syntax.Other{Type: "this"},
		Sel: &syntax.Other{Type: "property_identifier"},
	}})
	require.False(t, ok, "member callee")

	_, ok = set.Match(&syntax.Call{Fun: &syntax.Call{Fun: &syntax.Ident{Name: "callback"}}})
	require.False(t, ok, "call result callee")

	_, ok = set.Match(nil)
	require.False(t, ok)
}

func TestIsIdentifier(t *testing.T) {
	require.True(t, IsIdentifier("callback"))
	require.True(t, IsIdentifier("$next"))
	require.True(t, IsIdentifier("_cb1"))
	require.True(t, IsIdentifier("обратный"))
	require.False(t, IsIdentifier("9lives"))
	require.False(t, IsIdentifier("a-b"))
}
