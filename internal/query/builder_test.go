package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBuild_NoFacets(t *testing.T) {
	sql, args := Build(Criteria{PageSize: 20})

	assert.NotContains(t, sql, "WHERE")
	assert.NotContains(t, sql, "GROUP BY")
	assert.Contains(t, sql, "FROM questions q LEFT JOIN subjects s ON s.id = q.subject_id")
	assert.Contains(t, sql, "ORDER BY q.created_at DESC")
	assert.True(t, strings.HasSuffix(sql, "LIMIT ? OFFSET ?"))
	assert.Equal(t, []any{20, 0}, args)
}

func TestBuild_TextSearch(t *testing.T) {
	sql, args := Build(Criteria{SearchText: "deadlock", PageSize: 10})

	assert.Contains(t, sql, "(q.title ILIKE ? OR q.content ILIKE ?)")
	require.Len(t, args, 4)
	assert.Equal(t, "%deadlock%", args[0])
	assert.Equal(t, "%deadlock%", args[1])
	assert.Equal(t, []any{10, 0}, args[2:])
}

func TestBuild_BlankTextIsSkipped(t *testing.T) {
	sql, args := Build(Criteria{SearchText: "   ", PageSize: 10})

	assert.NotContains(t, sql, "ILIKE")
	assert.Equal(t, []any{10, 0}, args)
}

func TestBuild_TagIntersection(t *testing.T) {
	sql, args := Build(Criteria{Tags: []string{"java", "sql"}, PageSize: 10, Page: 2})

	assert.Contains(t, sql, "JOIN question_tags qt ON qt.question_id = q.id")
	assert.Contains(t, sql, "JOIN tags t ON t.id = qt.tag_id")
	assert.Contains(t, sql, "t.name IN (?, ?)")
	assert.Contains(t, sql, "GROUP BY q.id HAVING COUNT(DISTINCT t.id) = ?")

	// tag names, tag count, limit, offset - in placeholder order
	assert.Equal(t, []any{"java", "sql", 2, 10, 20}, args)
}

func TestBuild_NoTagJoinWithoutTags(t *testing.T) {
	sql, _ := Build(Criteria{OnlySolved: true, PageSize: 10})

	assert.NotContains(t, sql, "question_tags")
	assert.NotContains(t, sql, "GROUP BY")
}

func TestBuild_StatusFacets(t *testing.T) {
	sql, args := Build(Criteria{OnlyUnanswered: true, OnlySolved: true, PageSize: 10})

	// Both set is allowed: the builder ANDs them even though the
	// combination normally matches nothing.
	assert.Contains(t, sql, "q.answer_count = 0 AND q.is_solved = TRUE")
	assert.Equal(t, []any{10, 0}, args)
}

func TestBuild_AllFacets_ParamOrderMatchesPlaceholders(t *testing.T) {
	criteria := Criteria{
		SearchText:     "index scan",
		SubjectID:      intPtr(3),
		AuthorID:       intPtr(9),
		Tags:           []string{"postgres", "performance"},
		OnlyUnanswered: true,
		OnlySolved:     true,
		Sort:           SortMostUpvoted,
		Page:           1,
		PageSize:       25,
	}
	sql, args := Build(criteria)

	// Predicates appear in their fixed order.
	textIdx := strings.Index(sql, "ILIKE")
	subjectIdx := strings.Index(sql, "q.subject_id = ?")
	authorIdx := strings.Index(sql, "q.user_id = ?")
	unansweredIdx := strings.Index(sql, "q.answer_count = 0")
	solvedIdx := strings.Index(sql, "q.is_solved = TRUE")
	tagIdx := strings.Index(sql, "t.name IN")
	assert.True(t, textIdx < subjectIdx)
	assert.True(t, subjectIdx < authorIdx)
	assert.True(t, authorIdx < unansweredIdx)
	assert.True(t, unansweredIdx < solvedIdx)
	assert.True(t, solvedIdx < tagIdx)

	assert.Contains(t, sql, "ORDER BY q.upvotes DESC, q.created_at DESC")

	expected := []any{
		"%index scan%", "%index scan%", // text, twice
		3,                         // subject
		9,                         // author
		"postgres", "performance", // tags
		2,      // tag count for HAVING
		25, 25, // limit, offset (page 1 * size 25)
	}
	assert.Equal(t, expected, args)

	// Rendering N placeholders always yields N bound arguments.
	assert.Equal(t, strings.Count(sql, "?"), len(args))
}

func TestBuild_PlaceholderCountAlwaysMatchesArgs(t *testing.T) {
	cases := []Criteria{
		{},
		{SearchText: "x"},
		{SubjectID: intPtr(1)},
		{AuthorID: intPtr(2)},
		{Tags: []string{"a"}},
		{Tags: []string{"a", "b", "c"}},
		{OnlyUnanswered: true},
		{OnlySolved: true},
		{SearchText: "x", Tags: []string{"a", "b"}, OnlySolved: true, SubjectID: intPtr(4)},
	}
	for _, c := range cases {
		sql, args := Build(c)
		assert.Equal(t, strings.Count(sql, "?"), len(args), "query: %s", sql)

		countSQL, countArgs := BuildCount(c)
		assert.Equal(t, strings.Count(countSQL, "?"), len(countArgs), "count query: %s", countSQL)
	}
}

func TestBuild_NoLiteralInterpolation(t *testing.T) {
	malicious := "'; DROP TABLE questions; --"
	sql, args := Build(Criteria{SearchText: malicious, Tags: []string{malicious}})

	assert.NotContains(t, sql, "DROP TABLE")
	assert.Contains(t, args, "%"+malicious+"%")
	assert.Contains(t, args, malicious)
}

func TestBuildCount_PlainWhenUngrouped(t *testing.T) {
	sql, args := BuildCount(Criteria{OnlySolved: true})

	assert.True(t, strings.HasPrefix(sql, "SELECT COUNT(*) FROM questions q"))
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.Empty(t, args)
}

func TestBuildCount_WrapsGroupedQuery(t *testing.T) {
	sql, args := BuildCount(Criteria{Tags: []string{"go", "sql"}})

	assert.True(t, strings.HasPrefix(sql, "SELECT COUNT(*) FROM (SELECT q.id"))
	assert.True(t, strings.HasSuffix(sql, ") AS matched"))
	assert.Contains(t, sql, "HAVING COUNT(DISTINCT t.id) = ?")
	assert.Equal(t, []any{"go", "sql", 2}, args)
}

func TestSortOption_FixedClauses(t *testing.T) {
	newest, _ := Build(Criteria{Sort: SortNewest})
	top, _ := Build(Criteria{Sort: SortMostUpvoted})

	assert.Contains(t, newest, "ORDER BY q.created_at DESC")
	assert.Contains(t, top, "ORDER BY q.upvotes DESC, q.created_at DESC")
}
