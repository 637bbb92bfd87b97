// Package query renders faceted question searches into a single
// parameterized SQL statement and derives page metadata for the results.
package query

import (
	"fmt"
	"strings"
)

// SortOption selects the ORDER BY expression. Each option maps to a
// fixed clause; nothing user-supplied is ever spliced into it.
type SortOption int

const (
	SortNewest SortOption = iota
	SortMostUpvoted
)

func (s SortOption) orderBy() string {
	switch s {
	case SortMostUpvoted:
		return "ORDER BY q.upvotes DESC, q.created_at DESC"
	default:
		return "ORDER BY q.created_at DESC"
	}
}

// Criteria is one search request: any combination of facets. Zero values
// mean "facet not applied". Tags use intersection semantics — a question
// must carry every listed tag.
type Criteria struct {
	SearchText     string
	SubjectID      *int
	AuthorID       *int
	Tags           []string
	OnlyUnanswered bool
	OnlySolved     bool
	Sort           SortOption
	Page           int
	PageSize       int
}

// Limit returns the clamped page size.
func (c Criteria) Limit() int {
	return ClampPageSize(c.PageSize)
}

// Offset returns the row offset for the requested page.
func (c Criteria) Offset() int {
	return c.Page * c.Limit()
}

const questionColumns = "q.id, q.user_id, q.subject_id, q.title, q.content, " +
	"q.upvotes, q.downvotes, q.answer_count, q.view_count, q.is_solved, " +
	"q.created_at, q.updated_at"

// predicate is one optional WHERE conjunct together with the values its
// placeholders bind to, in placeholder order.
type predicate struct {
	expr string
	args []any
}

// predicates assembles the conjuncts in a fixed order: text search,
// subject, author, unanswered, solved, tag membership. Keeping the order
// fixed keeps the emitted placeholders and the argument list in lockstep.
func (c Criteria) predicates() []predicate {
	var preds []predicate

	if text := strings.TrimSpace(c.SearchText); text != "" {
		pattern := "%" + text + "%"
		preds = append(preds, predicate{
			expr: "(q.title ILIKE ? OR q.content ILIKE ?)",
			args: []any{pattern, pattern},
		})
	}
	if c.SubjectID != nil {
		preds = append(preds, predicate{expr: "q.subject_id = ?", args: []any{*c.SubjectID}})
	}
	if c.AuthorID != nil {
		preds = append(preds, predicate{expr: "q.user_id = ?", args: []any{*c.AuthorID}})
	}
	if c.OnlyUnanswered {
		preds = append(preds, predicate{expr: "q.answer_count = 0"})
	}
	if c.OnlySolved {
		preds = append(preds, predicate{expr: "q.is_solved = TRUE"})
	}
	if len(c.Tags) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(c.Tags)), ", ")
		args := make([]any, len(c.Tags))
		for i, tag := range c.Tags {
			args[i] = tag
		}
		preds = append(preds, predicate{
			expr: fmt.Sprintf("t.name IN (%s)", placeholders),
			args: args,
		})
	}
	return preds
}

// writeFromAndWhere emits the shared FROM/JOIN/WHERE/GROUP BY section used
// by both the row query and the count query, appending bound values to
// args as their placeholders are written.
func (c Criteria) writeFromAndWhere(sql *strings.Builder, args []any) []any {
	sql.WriteString(" FROM questions q LEFT JOIN subjects s ON s.id = q.subject_id")
	if len(c.Tags) > 0 {
		sql.WriteString(" JOIN question_tags qt ON qt.question_id = q.id")
		sql.WriteString(" JOIN tags t ON t.id = qt.tag_id")
	}

	for i, p := range c.predicates() {
		if i == 0 {
			sql.WriteString(" WHERE ")
		} else {
			sql.WriteString(" AND ")
		}
		sql.WriteString(p.expr)
		args = append(args, p.args...)
	}

	if len(c.Tags) > 0 {
		// The tag join alone matches "any tag in set". Requiring the
		// distinct tag count per question to equal the requested count is
		// what turns it into an intersection.
		sql.WriteString(" GROUP BY q.id HAVING COUNT(DISTINCT t.id) = ?")
		args = append(args, len(c.Tags))
	}
	return args
}

// Build renders the search as one SELECT with positional placeholders.
// Arguments are returned in exactly the order their placeholders appear,
// so positional binding stays correct whichever facets were applied.
// OnlyUnanswered and OnlySolved are deliberately not mutually exclusive:
// both set means both predicates apply.
func Build(c Criteria) (string, []any) {
	var sql strings.Builder
	var args []any

	sql.WriteString("SELECT ")
	sql.WriteString(questionColumns)
	args = c.writeFromAndWhere(&sql, args)

	sql.WriteString(" ")
	sql.WriteString(c.Sort.orderBy())
	sql.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, c.Limit(), c.Offset())

	return sql.String(), args
}

// BuildCount renders the matching total-count query: same facets, no
// sort or pagination. When the row query is grouped for tag intersection
// the count wraps it in a subquery so grouped matches count as one row.
func BuildCount(c Criteria) (string, []any) {
	var sql strings.Builder
	var args []any

	grouped := len(c.Tags) > 0
	if grouped {
		sql.WriteString("SELECT COUNT(*) FROM (SELECT q.id")
	} else {
		sql.WriteString("SELECT COUNT(*)")
	}
	args = c.writeFromAndWhere(&sql, args)
	if grouped {
		sql.WriteString(") AS matched")
	}

	return sql.String(), args
}
