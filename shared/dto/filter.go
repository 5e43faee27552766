package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterPlainQuery        = "plan"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is a single predicate rendered as a named-parameter SQL condition.
// Plain queries carry their own bound values in Args.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in less_eq greater_eq plan"`
	Table    string
	Args     map[string]any
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	name := f.argName()

	if op, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", f.column(), op, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", f.column(), name), args
	case FilterOperatorIn:
		return f.inClause(name, args)
	case FilterPlainQuery:
		query, _ := f.Value.(string)
		maps.Copy(args, f.Args)

		return "(" + query + ")", args
	}

	return "", args
}

// inClause binds every element separately. An empty list matches nothing.
func (f *Filter) inClause(name string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if kind := val.Kind(); kind != reflect.Slice && kind != reflect.Array {
		args[name] = f.Value

		return fmt.Sprintf("%s IN (:%s) ", f.column(), name), args
	}

	if val.Len() == 0 {
		return "FALSE", args
	}

	placeholders := make([]string, 0, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = val.Index(idx).Interface()
		placeholders = append(placeholders, ":"+key)
	}

	return fmt.Sprintf("%s IN (%s) ", f.column(), strings.Join(placeholders, ", ")), args
}

// FilterGroup joins filters and nested groups with Operator (AND when empty).
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var where string
		var itemArgs map[string]any

		switch typed := item.(type) {
		case Filter:
			where, itemArgs = typed.GetWhereClause()
		case FilterGroup:
			where, itemArgs = typed.GetWhereClause()
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, itemArgs)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}

// Add appends filters to the group and returns it.
func (f FilterGroup) Add(filters ...any) FilterGroup {
	f.Filters = append(f.Filters, filters...)

	return f
}
