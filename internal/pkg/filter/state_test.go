package filter

import (
	"testing"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	full := State{Category: "Sales", Client: "Acme", CreatedBy: "ann", Search: "kpi"}

	tCases := []struct {
		name  string
		state State
		event Event
		want  State
	}{
		{
			name:  "set_category",
			state: State{},
			event: SetFilter{Field: FieldCategory, Value: "Sales"},
			want:  State{Category: "Sales"},
		},
		{
			name:  "set_search_keeps_others",
			state: State{Client: "Acme"},
			event: SetFilter{Field: FieldSearch, Value: "rev"},
			want:  State{Client: "Acme", Search: "rev"},
		},
		{
			name:  "unknown_field_is_noop",
			state: full,
			event: SetFilter{Field: Field("owner"), Value: "x"},
			want:  full,
		},
		{
			name:  "clear_resets_search_too",
			state: full,
			event: ClearFilters{},
			want:  State{},
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tCase.want, Reduce(tCase.state, tCase.event))
		})
	}
}

func TestQueryOmitsEmptyKeys(t *testing.T) {
	states := []State{
		{},
		{Category: " "},
		{Category: "Sales", Client: "\t", CreatedBy: "", Search: " kpi"},
		{Category: "a", Client: "b", CreatedBy: "c", Search: "d"},
	}

	for _, s := range states {
		for key, vals := range s.Query().Values() {
			require.Len(t, vals, 1, key)
			assert.NotEmpty(t, vals[0], key)
		}
	}

	cleared := Reduce(State{Category: "Sales", Search: "kpi"}, ClearFilters{})
	assert.Empty(t, cleared.Query().Values())
	assert.True(t, cleared.IsEmpty())

	assert.Equal(t, types.DashboardsQuery{Category: "Sales", Search: "kpi"},
		State{Category: "Sales", Client: "\t", Search: " kpi"}.Query())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("created-by")
	require.NoError(t, err)
	assert.Equal(t, FieldCreatedBy, f)

	f, err = ParseField(" Search ")
	require.NoError(t, err)
	assert.Equal(t, FieldSearch, f)

	_, err = ParseField("owner")
	assert.ErrorIs(t, err, types.ErrInvalidRequestField)
}
