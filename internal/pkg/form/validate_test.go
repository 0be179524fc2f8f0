package form

import (
	"testing"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpdateDraft() UpdateDraft {
	return UpdateDraft{
		ID:               "5",
		Description:      "Monthly revenue",
		LastUpdatedDate:  "2024-03-01",
		UpdatedBy:        "ann",
		DataFrom:         "2024-01-01",
		DataTo:           "2024-02-29",
		PublishedAccount: "bi@acme.com",
	}
}

func validCreateDraft() CreateDraft {
	return CreateDraft{
		Category:         "Sales",
		Client:           "Acme",
		DataFrom:         "2024-01-01",
		DataTo:           "2024-02-29",
		CreatedBy:        "ann",
		LastUpdatedDate:  "2024-03-01",
		UpdatedBy:        "bob",
		PublishedAccount: "bi@acme.com",
		Topic:            "Revenue",
		Description:      "Monthly revenue",
		Link:             "https://app.powerbi.com/x",
	}
}

func TestValidateUpdateOrder(t *testing.T) {
	tCases := []struct {
		name    string
		mutate  func(*UpdateDraft)
		opts    Options
		wantMsg string
	}{
		{
			name:    "all_blank_reports_description_first",
			mutate:  func(d *UpdateDraft) { *d = UpdateDraft{ID: d.ID} },
			wantMsg: MsgDescriptionRequired,
		},
		{
			name:    "whitespace_description",
			mutate:  func(d *UpdateDraft) { d.Description = "   " },
			wantMsg: MsgDescriptionRequired,
		},
		{
			name: "last_updated_before_updated_by",
			mutate: func(d *UpdateDraft) {
				d.LastUpdatedDate = ""
				d.UpdatedBy = ""
			},
			wantMsg: MsgLastUpdatedDateRequired,
		},
		{
			name: "updated_by_before_range",
			mutate: func(d *UpdateDraft) {
				d.UpdatedBy = " "
				d.DataTo = ""
			},
			wantMsg: MsgUpdatedByRequired,
		},
		{
			name:    "missing_data_to",
			mutate:  func(d *UpdateDraft) { d.DataTo = "" },
			wantMsg: MsgDataDateRangeRequired,
		},
		{
			name: "range_before_published_account",
			mutate: func(d *UpdateDraft) {
				d.DataFrom = ""
				d.PublishedAccount = ""
			},
			wantMsg: MsgDataDateRangeRequired,
		},
		{
			name:    "published_account",
			mutate:  func(d *UpdateDraft) { d.PublishedAccount = "" },
			wantMsg: MsgPublishedAccountRequired,
		},
		{
			name:   "reversed_range_allowed_by_default",
			mutate: func(d *UpdateDraft) { d.DataFrom, d.DataTo = d.DataTo, d.DataFrom },
		},
		{
			name:    "reversed_range_rejected_when_enabled",
			mutate:  func(d *UpdateDraft) { d.DataFrom, d.DataTo = d.DataTo, d.DataFrom },
			opts:    Options{CheckDateOrder: true},
			wantMsg: MsgDataDateOrder,
		},
		{
			name:    "bad_date_when_enabled",
			mutate:  func(d *UpdateDraft) { d.DataFrom = "01/02/2024" },
			opts:    Options{CheckDateOrder: true},
			wantMsg: MsgDataDateRangeInvalid,
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			d := validUpdateDraft()
			tCase.mutate(&d)

			req, err := ValidateUpdate(d, tCase.opts)
			if tCase.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, d.ID, req.ID)
				return
			}
			require.ErrorIs(t, err, types.ErrValidation)
			assert.Equal(t, tCase.wantMsg, err.Error())
		})
	}
}

func TestValidateCreateRejectsAnyBlankField(t *testing.T) {
	for _, field := range CreateFields {
		field := field
		t.Run(field, func(t *testing.T) {
			t.Parallel()

			d, err := validCreateDraft().With(field, "  ")
			require.NoError(t, err)

			_, err = ValidateCreate(d, nil, Options{})
			require.ErrorIs(t, err, types.ErrValidation)
			assert.Equal(t, MsgFillAllFields, err.Error())
		})
	}
}

func TestValidateUpdatePayloadIsDraft(t *testing.T) {
	t.Parallel()

	d := validUpdateDraft()
	d.Description = " Monthly revenue "
	d.LastUpdatedDate = " "
	d.DataFrom = "2024-01-01 "

	req, err := ValidateUpdate(d, Options{})
	require.NoError(t, err)
	assert.Equal(t, types.UpdateDashboardRequest{
		ID:               d.ID,
		Description:      " Monthly revenue ",
		LastUpdatedDate:  " ",
		UpdatedBy:        d.UpdatedBy,
		DataFrom:         "2024-01-01 ",
		DataTo:           d.DataTo,
		PublishedAccount: d.PublishedAccount,
	}, req)
}

func TestValidateCreatePayload(t *testing.T) {
	t.Parallel()

	req, err := ValidateCreate(validCreateDraft(), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "", req.UserID)
	assert.Equal(t, "", req.UserFirstName)
	assert.Equal(t, "", req.UserLastName)
	assert.Equal(t, "Revenue", req.Topic)

	padded, err := validCreateDraft().With(FieldTopic, " Revenue ")
	require.NoError(t, err)
	req, err = ValidateCreate(padded, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, " Revenue ", req.Topic)

	id := &types.Identity{UserID: "7", FirstName: "Ann"}
	req, err = ValidateCreate(validCreateDraft(), id, Options{})
	require.NoError(t, err)
	assert.Equal(t, "7", req.UserID)
	assert.Equal(t, "Ann", req.UserFirstName)
	assert.Equal(t, "", req.UserLastName)
}

func TestDraftWith(t *testing.T) {
	t.Parallel()

	d, err := UpdateDraft{}.With(FieldTopic, "x")
	assert.ErrorIs(t, err, types.ErrInvalidRequestField)
	assert.Equal(t, UpdateDraft{}, d)

	c, err := CreateDraft{}.With(FieldLink, "https://x")
	require.NoError(t, err)
	assert.Equal(t, "https://x", c.Get(FieldLink))

	u := NewUpdateDraft(types.Dashboard{ID: "3", Topic: "T", Description: "D", DataTo: "2024-01-01"})
	assert.Equal(t, types.DashboardID("3"), u.ID)
	assert.Equal(t, "D", u.Get(FieldDescription))
	assert.Equal(t, "2024-01-01", u.Get(FieldDataTo))
}
