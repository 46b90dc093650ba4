package expander

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/fragsplice/internal/diag"
	"github.com/specialistvlad/fragsplice/internal/marker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource serves fragments from memory.
type mapSource map[string]string

func (m mapSource) Load(name string) (string, error) {
	content, ok := m[name]
	if !ok {
		return "", &diag.Error{Name: name, Err: diag.ErrUnknownFragment}
	}
	return content, nil
}

func params(kv ...string) []marker.Param {
	var out []marker.Param
	for i := 0; i < len(kv); i += 2 {
		out = append(out, marker.Param{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestExpand_SubstitutesEveryOccurrence(t *testing.T) {
	t.Parallel()

	e := New(mapSource{"foo": "hello $name$, bye $name$"})
	lines, err := e.Expand(context.Background(), marker.Invocation{
		Names:  []string{"foo"},
		Params: params("name", "world"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world, bye world"}, lines)
}

func TestExpand_ConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	e := New(mapSource{
		"a": "X1\nX2",
		"b": "Y",
	})
	lines, err := e.Expand(context.Background(), marker.Invocation{Names: []string{"b", "a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "X1", "X2", "Y"}, lines)
}

func TestExpand_ParamsApplyToEveryFragment(t *testing.T) {
	t.Parallel()

	e := New(mapSource{
		"array_define": "typedef struct { $TYPE$ *internalArray; } $NAME$;",
		"array_add":    "$TYPE$ *$NAME$_Add($NAME$ *array, $TYPE$ item);",
	})
	lines, err := e.Expand(context.Background(), marker.Invocation{
		Names:  []string{"array_define", "array_add"},
		Params: params("TYPE", "bool", "NAME", "Clay__BoolArray"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"typedef struct { bool *internalArray; } Clay__BoolArray;",
		"bool *Clay__BoolArray_Add(Clay__BoolArray *array, bool item);",
	}, lines)
}

func TestExpand_IsNotRecursive(t *testing.T) {
	t.Parallel()

	e := New(mapSource{"foo": "$A$ $B$"})
	lines, err := e.Expand(context.Background(), marker.Invocation{
		Names:  []string{"foo"},
		Params: params("A", "[$B]", "B", "b"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"[$B] b"}, lines)
}

func TestExpand_FirstDuplicateKeyWins(t *testing.T) {
	t.Parallel()

	e := New(mapSource{"foo": "$X$"})
	lines, err := e.Expand(context.Background(), marker.Invocation{
		Names:  []string{"foo"},
		Params: params("X", "first", "X", "second"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, lines)
}

func TestExpand_UnresolvedPlaceholder(t *testing.T) {
	t.Parallel()

	e := New(mapSource{"foo": "$TYPE$ value = $unset$; // $other$"})
	_, err := e.Expand(context.Background(), marker.Invocation{
		Names:  []string{"foo"},
		Params: params("TYPE", "int"),
	})
	require.ErrorIs(t, err, diag.ErrUnresolvedPlaceholder)

	var de *diag.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "unset", de.Name)
}

func TestExpand_LoneDollarIsLiteral(t *testing.T) {
	t.Parallel()

	e := New(mapSource{"foo": "echo $HOME costs $ 5"})
	lines, err := e.Expand(context.Background(), marker.Invocation{Names: []string{"foo"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo $HOME costs $ 5"}, lines)
}

func TestExpand_UnknownFragment(t *testing.T) {
	t.Parallel()

	e := New(mapSource{"a": "A"})
	_, err := e.Expand(context.Background(), marker.Invocation{Names: []string{"a", "doesnotexist"}})
	require.ErrorIs(t, err, diag.ErrUnknownFragment)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\nb\n\n"))
	assert.Equal(t, []string{""}, SplitLines(""))
}
