package form

import (
	"strings"
	"time"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

const (
	MsgDescriptionRequired      = "Description is required"
	MsgLastUpdatedDateRequired  = "Last updated date is required"
	MsgUpdatedByRequired        = "Updated by field is required"
	MsgDataDateRangeRequired    = "Data date range is required"
	MsgPublishedAccountRequired = "Published account is required"
	MsgDataDateRangeInvalid     = "Data date range is invalid"
	MsgDataDateOrder            = "Data from date must not be after data to date"

	MsgFillAllFields = "Please fill all fields."
)

const dateLayout = "2006-01-02"

type Options struct {
	// CheckDateOrder rejects data_from after data_to.
	CheckDateOrder bool
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateUpdate checks the rules in order and stops at the first failure.
// Dates only have to be non-empty; the payload is the draft as typed.
func ValidateUpdate(d UpdateDraft, opts Options) (types.UpdateDashboardRequest, error) {
	switch {
	case blank(d.Description):
		return types.UpdateDashboardRequest{}, types.NewValidationError(FieldDescription, MsgDescriptionRequired)
	case d.LastUpdatedDate == "":
		return types.UpdateDashboardRequest{}, types.NewValidationError(FieldLastUpdatedDate, MsgLastUpdatedDateRequired)
	case blank(d.UpdatedBy):
		return types.UpdateDashboardRequest{}, types.NewValidationError(FieldUpdatedBy, MsgUpdatedByRequired)
	case d.DataFrom == "" || d.DataTo == "":
		return types.UpdateDashboardRequest{}, types.NewValidationError(FieldDataFrom, MsgDataDateRangeRequired)
	}
	if opts.CheckDateOrder {
		if err := checkDateOrder(d.DataFrom, d.DataTo); err != nil {
			return types.UpdateDashboardRequest{}, err
		}
	}
	if blank(d.PublishedAccount) {
		return types.UpdateDashboardRequest{}, types.NewValidationError(FieldPublishedAccount, MsgPublishedAccountRequired)
	}

	return types.UpdateDashboardRequest{
		ID:               d.ID,
		Description:      d.Description,
		LastUpdatedDate:  d.LastUpdatedDate,
		UpdatedBy:        d.UpdatedBy,
		DataFrom:         d.DataFrom,
		DataTo:           d.DataTo,
		PublishedAccount: d.PublishedAccount,
	}, nil
}

// ValidateCreate requires every field at once. The identity fields of the
// payload come from id and default to "".
func ValidateCreate(d CreateDraft, id *types.Identity, opts Options) (types.CreateDashboardRequest, error) {
	for _, f := range CreateFields {
		if blank(d.Get(f)) {
			return types.CreateDashboardRequest{}, types.NewValidationError(f, MsgFillAllFields)
		}
	}
	if opts.CheckDateOrder {
		if err := checkDateOrder(d.DataFrom, d.DataTo); err != nil {
			return types.CreateDashboardRequest{}, err
		}
	}

	req := types.CreateDashboardRequest{
		Category:         d.Category,
		Client:           d.Client,
		DataFrom:         d.DataFrom,
		DataTo:           d.DataTo,
		CreatedBy:        d.CreatedBy,
		LastUpdatedDate:  d.LastUpdatedDate,
		UpdatedBy:        d.UpdatedBy,
		PublishedAccount: d.PublishedAccount,
		Topic:            d.Topic,
		Description:      d.Description,
		Link:             d.Link,
	}
	if id != nil {
		req.UserID = id.UserID
		req.UserFirstName = id.FirstName
		req.UserLastName = id.LastName
	}
	return req, nil
}

func checkDateOrder(from, to string) error {
	f, err := time.Parse(dateLayout, strings.TrimSpace(from))
	if err != nil {
		return types.NewValidationError(FieldDataFrom, MsgDataDateRangeInvalid)
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(to))
	if err != nil {
		return types.NewValidationError(FieldDataTo, MsgDataDateRangeInvalid)
	}
	if f.After(t) {
		return types.NewValidationError(FieldDataFrom, MsgDataDateOrder)
	}
	return nil
}
