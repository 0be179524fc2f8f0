package filter

import (
	"fmt"
	"strings"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

type Field string

const (
	FieldCategory  Field = "category"
	FieldClient    Field = "client"
	FieldCreatedBy Field = "created_by"
	FieldSearch    Field = "search"
)

// Fields lists the filter fields in display order.
var Fields = []Field{FieldCategory, FieldClient, FieldCreatedBy, FieldSearch}

func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", types.NewErrInvalidRequestField(fmt.Sprintf("unknown filter field %q", s))
}

// State is the current set of list filters. Empty means unconstrained.
type State struct {
	Category  string
	Client    string
	CreatedBy string
	Search    string
}

func (s State) Get(f Field) string {
	switch f {
	case FieldCategory:
		return s.Category
	case FieldClient:
		return s.Client
	case FieldCreatedBy:
		return s.CreatedBy
	case FieldSearch:
		return s.Search
	default:
		return ""
	}
}

func (s State) with(f Field, v string) State {
	switch f {
	case FieldCategory:
		s.Category = v
	case FieldClient:
		s.Client = v
	case FieldCreatedBy:
		s.CreatedBy = v
	case FieldSearch:
		s.Search = v
	}
	return s
}

// Query derives the list request. Blank fields are dropped when encoded.
func (s State) Query() types.DashboardsQuery {
	return types.DashboardsQuery{
		Category:  strings.TrimSpace(s.Category),
		Client:    strings.TrimSpace(s.Client),
		CreatedBy: strings.TrimSpace(s.CreatedBy),
		Search:    strings.TrimSpace(s.Search),
	}
}

func (s State) IsEmpty() bool {
	return s.Query().IsEmpty()
}

type Event interface {
	isEvent()
}

type SetFilter struct {
	Field Field
	Value string
}

// ClearFilters resets every field, search included, in one transition.
type ClearFilters struct{}

func (SetFilter) isEvent()    {}
func (ClearFilters) isEvent() {}

// Reduce is the pure filter transition.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case SetFilter:
		return s.with(e.Field, e.Value)
	case ClearFilters:
		return State{}
	default:
		return s
	}
}
