// Package filter compiles declarative, query-string driven filter sets into
// GORM clauses. A FilterSet lists, per public field name, the column it maps
// to and the comparison operators callers may use on it; anything else in
// the query string is either a reserved parameter (search, ordering, limit,
// offset) or ignored.
package filter

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Operator is a comparison allowed on a field
type Operator string

const (
	OpExact Operator = "exact"
	OpIn    Operator = "in"
	OpGte   Operator = "gte"
	OpLte   Operator = "lte"
)

const (
	paramSearch   = "search"
	paramOrdering = "ordering"
	paramLimit    = "limit"
	paramOffset   = "offset"

	lookupSeparator = "__"

	// MaxLimit caps page size regardless of what the client asks for
	MaxLimit = 100
)

// ValueParser converts one raw query value to the value bound into SQL
type ValueParser func(string) (interface{}, error)

// Field describes a filterable field
type Field struct {
	Column    string
	Operators []Operator
	Parse     ValueParser
}

func (f Field) allows(op Operator) bool {
	for _, o := range f.Operators {
		if o == op {
			return true
		}
	}
	return false
}

// FilterSet is the declaration of what a listing accepts
type FilterSet struct {
	Fields   map[string]Field
	Search   []string
	Ordering map[string]string
	// Default ordering, e.g. []string{"title"} or []string{"-created"}
	Default []string
}

// Condition is one compiled predicate
type Condition struct {
	Column string
	Op     Operator
	Value  interface{}
}

// OrderTerm is one compiled ORDER BY term
type OrderTerm struct {
	Column string
	Desc   bool
}

// Query is the parsed, validated form of a listing request
type Query struct {
	Conditions    []Condition
	Search        string
	SearchColumns []string
	Order         []OrderTerm
	Limit         int
	Offset        int
	// Key is a canonical encoding of the accepted parameters, usable as a cache key
	Key string
}

// Error reports a rejected query parameter
type Error struct {
	Param  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid query parameter %q: %s", e.Param, e.Reason)
}

// Parse validates values against the filter set
func (fs FilterSet) Parse(values url.Values) (*Query, error) {
	q := &Query{SearchColumns: fs.Search}
	accepted := url.Values{}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := values.Get(key)
		if raw == "" {
			continue
		}

		switch key {
		case paramSearch:
			if len(fs.Search) == 0 {
				continue
			}
			q.Search = strings.TrimSpace(raw)
			accepted.Set(key, q.Search)
			continue
		case paramOrdering:
			order, err := fs.parseOrdering(raw)
			if err != nil {
				return nil, err
			}
			q.Order = order
			accepted.Set(key, raw)
			continue
		case paramLimit, paramOffset:
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return nil, &Error{Param: key, Reason: "must be a non-negative integer"}
			}
			if key == paramLimit {
				if n > MaxLimit {
					n = MaxLimit
				}
				q.Limit = n
			} else {
				q.Offset = n
			}
			accepted.Set(key, strconv.Itoa(n))
			continue
		}

		name, op := splitLookup(key)
		field, ok := fs.Fields[name]
		if !ok {
			continue
		}
		if !field.allows(op) {
			return nil, &Error{Param: key, Reason: fmt.Sprintf("operator %q is not supported", op)}
		}

		cond, err := compile(field, op, raw)
		if err != nil {
			return nil, &Error{Param: key, Reason: err.Error()}
		}
		q.Conditions = append(q.Conditions, cond)
		accepted.Set(key, raw)
	}

	if len(q.Order) == 0 {
		order, err := fs.parseOrdering(strings.Join(fs.Default, ","))
		if err != nil {
			return nil, err
		}
		q.Order = order
	}

	q.Key = accepted.Encode()
	return q, nil
}

func (fs FilterSet) parseOrdering(raw string) ([]OrderTerm, error) {
	var terms []OrderTerm
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		column, ok := fs.Ordering[name]
		if !ok {
			return nil, &Error{Param: paramOrdering, Reason: fmt.Sprintf("cannot order by %q", name)}
		}
		terms = append(terms, OrderTerm{Column: column, Desc: desc})
	}
	return terms, nil
}

func splitLookup(key string) (string, Operator) {
	if i := strings.LastIndex(key, lookupSeparator); i > 0 {
		return key[:i], Operator(key[i+len(lookupSeparator):])
	}
	return key, OpExact
}

func compile(field Field, op Operator, raw string) (Condition, error) {
	cond := Condition{Column: field.Column, Op: op}

	if op == OpIn {
		parts := strings.Split(raw, ",")
		vals := make([]interface{}, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			v, err := field.Parse(p)
			if err != nil {
				return cond, err
			}
			vals = append(vals, v)
		}
		if len(vals) == 0 {
			return cond, fmt.Errorf("empty list")
		}
		cond.Value = vals
		return cond, nil
	}

	v, err := field.Parse(strings.TrimSpace(raw))
	if err != nil {
		return cond, err
	}
	cond.Value = v
	return cond, nil
}

// likeEscaper makes user input match literally inside a LIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Where applies the filter conditions and search, but not ordering or paging,
// so the result can be counted
func (q *Query) Where(db *gorm.DB) *gorm.DB {
	for _, c := range q.Conditions {
		switch c.Op {
		case OpExact:
			db = db.Where(c.Column+" = ?", c.Value)
		case OpIn:
			db = db.Where(c.Column+" IN ?", c.Value)
		case OpGte:
			db = db.Where(c.Column+" >= ?", c.Value)
		case OpLte:
			db = db.Where(c.Column+" <= ?", c.Value)
		}
	}

	if q.Search != "" && len(q.SearchColumns) > 0 {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q.Search)) + "%"
		clauses := make([]string, len(q.SearchColumns))
		args := make([]interface{}, len(q.SearchColumns))
		for i, col := range q.SearchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	return db
}

// OrderAndPage applies ordering and limit/offset
func (q *Query) OrderAndPage(db *gorm.DB) *gorm.DB {
	for _, o := range q.Order {
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		db = db.Order(o.Column + dir)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	return db
}
