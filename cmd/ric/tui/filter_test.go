package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var fruit = []Choice{
	{Name: "A", Value: "apple"},
	{Name: "B", Value: "banana"},
	{Name: "C", Value: "cherry"},
}

func TestFilter(t *testing.T) {
	t.Run("EmptyQuery_ReturnsAllInOrder", func(t *testing.T) {
		assert.Equal(t, fruit, Filter(fruit, ""))
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		got := Filter(fruit, "BAN")
		require.Len(t, got, 1)
		assert.Equal(t, "banana", got[0].Value)
	})

	t.Run("PreservesCandidateOrder", func(t *testing.T) {
		got := Filter(fruit, "a")
		assert.Equal(t, []Choice{fruit[0], fruit[1]}, got)
	})

	t.Run("MatchesValueNotName", func(t *testing.T) {
		choices := []Choice{{Name: "Font Awesome", Value: "fa"}}
		assert.Empty(t, Filter(choices, "awesome"))
		assert.Len(t, Filter(choices, "FA"), 1)
	})

	t.Run("NoMatch_ReturnsEmpty", func(t *testing.T) {
		assert.Empty(t, Filter(fruit, "zzz"))
	})

	t.Run("PatternCharactersAreLiteral", func(t *testing.T) {
		choices := []Choice{{Value: "a(b"}, {Value: "ab"}, {Value: "a.b"}}
		assert.Equal(t, []Choice{{Value: "a(b"}}, Filter(choices, "("))
		assert.Equal(t, []Choice{{Value: "a.b"}}, Filter(choices, "a.b"))
	})

	t.Run("DoesNotAliasInput", func(t *testing.T) {
		in := []Choice{{Value: "x"}}
		out := Filter(in, "")
		out[0].Value = "y"
		assert.Equal(t, "x", in[0].Value)
	})
}

func TestFilterValues(t *testing.T) {
	icons := []string{"FaBeer", "FaBell", "MdHome"}
	assert.Equal(t, []string{"FaBeer", "FaBell"}, FilterValues(icons, "fab"))
	assert.Equal(t, icons, FilterValues(icons, ""))
}

func TestSearchList_DeleteCharOnEmptyQuery(t *testing.T) {
	l := newSearchList(fruit)
	l.move(2)
	l.deleteChar()
	assert.Equal(t, "", l.query)
	assert.Equal(t, 0, l.active)
	assert.Len(t, l.visible, 3)
}

func TestSearchList_DeleteCharRemovesLastRune(t *testing.T) {
	l := newSearchList(fruit)
	l.appendText("ch")
	require.Len(t, l.visible, 1)
	l.deleteChar()
	assert.Equal(t, "c", l.query)
	assert.Len(t, l.visible, 1) // only cherry contains "c"
	l.deleteChar()
	assert.Len(t, l.visible, 3)
}

func TestSearchList_MoveOnEmptyIsNoop(t *testing.T) {
	l := newSearchList(nil)
	l.move(1)
	l.move(-1)
	assert.Equal(t, 0, l.active)
	_, ok := l.current()
	assert.False(t, ok)
}

// valuesGen draws a list of distinct lowercase values.
func valuesGen() *rapid.Generator[[]string] {
	return rapid.SliceOfDistinct(rapid.StringMatching(`[a-d]{1,5}`), func(s string) string { return s })
}

func TestFilterProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := valuesGen().Draw(t, "values")
		query := rapid.StringMatching(`[a-dA-D]{0,2}`).Draw(t, "query")
		choices := ChoicesFromValues(values)

		got := Filter(choices, query)

		// Exactly the ordered subsequence whose value contains the query.
		var want []Choice
		for _, c := range choices {
			if strings.Contains(strings.ToLower(c.Value), strings.ToLower(query)) {
				want = append(want, c)
			}
		}
		if len(want) != len(got) {
			t.Fatalf("got %d matches, want %d", len(got), len(want))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
			}
		}

		// Idempotent.
		again := Filter(got, query)
		if len(again) != len(got) {
			t.Fatalf("filter not idempotent: %d then %d", len(got), len(again))
		}
	})
}

func TestSearchListWrapProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,4}`), 1, 20, func(s string) string { return s }).Draw(t, "values")
		l := newSearchList(ChoicesFromValues(values))
		n := len(l.visible)

		l.active = n - 1
		l.move(+1)
		if l.active != 0 {
			t.Fatalf("down from last: got %d, want 0", l.active)
		}
		l.move(-1)
		if l.active != n-1 {
			t.Fatalf("up from first: got %d, want %d", l.active, n-1)
		}
	})
}

func TestSearchListResetProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-c]{1,4}`), 1, 20, func(s string) string { return s }).Draw(t, "values")
		l := newSearchList(ChoicesFromValues(values))
		l.move(rapid.IntRange(0, 30).Draw(t, "moves"))

		if rapid.Bool().Draw(t, "append") {
			l.appendText(rapid.StringMatching(`[a-c]`).Draw(t, "char"))
		} else {
			l.deleteChar()
		}
		if l.active != 0 {
			t.Fatalf("active not reset after filter change: %d", l.active)
		}
	})
}
