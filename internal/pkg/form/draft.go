package form

import (
	"fmt"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

// Draft field names, the same as the backend JSON keys.
const (
	FieldCategory         = "category"
	FieldClient           = "client"
	FieldDataFrom         = "data_from"
	FieldDataTo           = "data_to"
	FieldCreatedBy        = "created_by"
	FieldLastUpdatedDate  = "last_updated_date"
	FieldUpdatedBy        = "updated_by"
	FieldPublishedAccount = "published_account"
	FieldTopic            = "topic"
	FieldDescription      = "description"
	FieldLink             = "link"
)

// CreateFields lists the create form fields in display order.
var CreateFields = []string{
	FieldTopic, FieldCategory, FieldClient, FieldDescription, FieldLink,
	FieldCreatedBy, FieldUpdatedBy, FieldPublishedAccount,
	FieldDataFrom, FieldDataTo, FieldLastUpdatedDate,
}

// UpdateFields lists the update form fields in display order.
var UpdateFields = []string{
	FieldDescription, FieldLastUpdatedDate, FieldUpdatedBy,
	FieldDataFrom, FieldDataTo, FieldPublishedAccount,
}

// IsDateField reports whether the field holds a YYYY-MM-DD date.
func IsDateField(field string) bool {
	switch field {
	case FieldDataFrom, FieldDataTo, FieldLastUpdatedDate:
		return true
	default:
		return false
	}
}

type CreateDraft struct {
	Category         string
	Client           string
	DataFrom         string
	DataTo           string
	CreatedBy        string
	LastUpdatedDate  string
	UpdatedBy        string
	PublishedAccount string
	Topic            string
	Description      string
	Link             string
}

func (d *CreateDraft) ref(field string) *string {
	switch field {
	case FieldCategory:
		return &d.Category
	case FieldClient:
		return &d.Client
	case FieldDataFrom:
		return &d.DataFrom
	case FieldDataTo:
		return &d.DataTo
	case FieldCreatedBy:
		return &d.CreatedBy
	case FieldLastUpdatedDate:
		return &d.LastUpdatedDate
	case FieldUpdatedBy:
		return &d.UpdatedBy
	case FieldPublishedAccount:
		return &d.PublishedAccount
	case FieldTopic:
		return &d.Topic
	case FieldDescription:
		return &d.Description
	case FieldLink:
		return &d.Link
	default:
		return nil
	}
}

// With returns a copy of the draft with one field replaced.
func (d CreateDraft) With(field, value string) (CreateDraft, error) {
	p := d.ref(field)
	if p == nil {
		return d, unknownField(field)
	}
	*p = value
	return d, nil
}

func (d CreateDraft) Get(field string) string {
	if p := d.ref(field); p != nil {
		return *p
	}
	return ""
}

// UpdateDraft holds the editable part of an existing dashboard.
type UpdateDraft struct {
	ID    types.DashboardID
	Topic string

	Description      string
	LastUpdatedDate  string
	UpdatedBy        string
	DataFrom         string
	DataTo           string
	PublishedAccount string
}

// NewUpdateDraft copies the current values of d.
func NewUpdateDraft(d types.Dashboard) UpdateDraft {
	return UpdateDraft{
		ID:               d.ID,
		Topic:            d.Topic,
		Description:      d.Description,
		LastUpdatedDate:  d.LastUpdatedDate,
		UpdatedBy:        d.UpdatedBy,
		DataFrom:         d.DataFrom,
		DataTo:           d.DataTo,
		PublishedAccount: d.PublishedAccount,
	}
}

func (d *UpdateDraft) ref(field string) *string {
	switch field {
	case FieldDescription:
		return &d.Description
	case FieldLastUpdatedDate:
		return &d.LastUpdatedDate
	case FieldUpdatedBy:
		return &d.UpdatedBy
	case FieldDataFrom:
		return &d.DataFrom
	case FieldDataTo:
		return &d.DataTo
	case FieldPublishedAccount:
		return &d.PublishedAccount
	default:
		return nil
	}
}

func (d UpdateDraft) With(field, value string) (UpdateDraft, error) {
	p := d.ref(field)
	if p == nil {
		return d, unknownField(field)
	}
	*p = value
	return d, nil
}

func (d UpdateDraft) Get(field string) string {
	if p := d.ref(field); p != nil {
		return *p
	}
	return ""
}

func unknownField(field string) error {
	return types.NewErrInvalidRequestField(fmt.Sprintf("unknown form field %q", field))
}
