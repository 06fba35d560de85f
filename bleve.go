package qsgen

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// ToBleve hands the query text to bleve as a query string query.
//
// bleve parses prefixes, grouping parentheses, field scopes and phrases,
// but its ranges use >, < rather than [a TO b]. The text is not checked
// here; call Parse on the result for that.
func (q *Query) ToBleve() *query.QueryStringQuery {
	return bleve.NewQueryStringQuery(q.String())
}
