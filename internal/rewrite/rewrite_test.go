package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commonize/internal/rewrite"
)

func TestApply_SingleSpan(t *testing.T) {
	content := "keep-DELETE-keep"
	out := rewrite.Apply(content, []rewrite.Span{{Start: 4, End: 11}})
	assert.Equal(t, "keep-keep", out)
}

func TestApply_NoSpansLeavesContentUntouched(t *testing.T) {
	content := "nothing to remove"
	assert.Equal(t, content, rewrite.Apply(content, nil))
}

func TestApply_OrderOfPlannedSpansIsIrrelevant(t *testing.T) {
	content := "aaa[one]bbb[two]ccc[three]ddd"
	spans := []rewrite.Span{
		{Start: 3, End: 8},   // [one]
		{Start: 11, End: 16}, // [two]
		{Start: 19, End: 26}, // [three]
	}

	want := "aaabbbcccddd"
	assert.Equal(t, want, rewrite.Apply(content, spans))

	// Same spans presented in every other order produce the same result.
	permuted := [][]rewrite.Span{
		{spans[2], spans[0], spans[1]},
		{spans[1], spans[2], spans[0]},
		{spans[2], spans[1], spans[0]},
	}
	for _, p := range permuted {
		assert.Equal(t, want, rewrite.Apply(content, p))
	}
}

func TestApply_ConservesBytesOutsideSpans(t *testing.T) {
	content := "intro[gone1]middle[gone2]outro"
	spans := []rewrite.Span{
		{Start: 5, End: 12},
		{Start: 18, End: 25},
	}

	out := rewrite.Apply(content, spans)
	removed := 0
	for _, s := range spans {
		removed += s.End - s.Start
	}
	assert.Equal(t, len(content)-removed, len(out))
	assert.Equal(t, "intromiddleoutro", out)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	spans := []rewrite.Span{{Start: 0, End: 1}, {Start: 2, End: 3}}
	orig := []rewrite.Span{{Start: 0, End: 1}, {Start: 2, End: 3}}
	rewrite.Apply("abcd", spans)
	assert.Equal(t, orig, spans)
}

func TestPlan_AddAndFiles(t *testing.T) {
	p := rewrite.Plan{}
	p.Add("b.rs", 10, 20)
	p.Add("a.rs", 0, 5)
	p.Add("b.rs", 30, 40)

	assert.Equal(t, []string{"a.rs", "b.rs"}, p.Files())
	require.Len(t, p["b.rs"], 2)
	assert.Equal(t, rewrite.Span{Start: 10, End: 20}, p["b.rs"][0])
}
