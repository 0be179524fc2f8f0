package types

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DashboardID is the opaque identifier assigned by the backend.
// Backends send it either as a JSON number or as a string.
type DashboardID string

func (id *DashboardID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DashboardID(s)
		return nil
	}
	var n jsoniter.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("dashboard id: %w", err)
	}
	*id = DashboardID(n.String())
	return nil
}

func (id DashboardID) String() string {
	return string(id)
}

type Dashboard struct {
	ID               DashboardID `json:"id"`
	Topic            string      `json:"topic"`
	Category         string      `json:"category"`
	Client           string      `json:"client"`
	Description      string      `json:"description"`
	Link             string      `json:"link"`
	CreatedBy        string      `json:"created_by"`
	UpdatedBy        string      `json:"updated_by"`
	PublishedAccount string      `json:"published_account"`
	DataFrom         string      `json:"data_from"`
	DataTo           string      `json:"data_to"`
	LastUpdatedDate  string      `json:"last_updated_date"`
	CreatedAt        *string     `json:"created_at,omitempty"`
	UpdatedAt        *string     `json:"updated_at,omitempty"`
}

type Dashboards []Dashboard

// Find returns the dashboard with the given id.
func (ds Dashboards) Find(id DashboardID) (Dashboard, bool) {
	for _, d := range ds {
		if d.ID == id {
			return d, true
		}
	}
	return Dashboard{}, false
}

// DashboardsQuery holds the list filters. Empty fields are unconstrained.
type DashboardsQuery struct {
	Category  string
	Client    string
	CreatedBy string
	Search    string
}

// IsEmpty reports whether the query constrains nothing.
func (q DashboardsQuery) IsEmpty() bool {
	return len(q.Values()) == 0
}

// Values encodes the query, omitting empty fields.
func (q DashboardsQuery) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val = strings.TrimSpace(val); val != "" {
			v.Set(key, val)
		}
	}
	set("category", q.Category)
	set("client", q.Client)
	set("created_by", q.CreatedBy)
	set("search", q.Search)
	return v
}

type CreateDashboardRequest struct {
	Category         string `json:"category"`
	Client           string `json:"client"`
	DataFrom         string `json:"data_from"`
	DataTo           string `json:"data_to"`
	CreatedBy        string `json:"created_by"`
	LastUpdatedDate  string `json:"last_updated_date"`
	UpdatedBy        string `json:"updated_by"`
	PublishedAccount string `json:"published_account"`
	Topic            string `json:"topic"`
	Description      string `json:"description"`
	Link             string `json:"link"`

	UserID        string `json:"user_id"`
	UserFirstName string `json:"user_first_name"`
	UserLastName  string `json:"user_last_name"`
}

// UpdateDashboardRequest replaces the editable part of a dashboard as a whole.
type UpdateDashboardRequest struct {
	ID DashboardID `json:"-"`

	Description      string `json:"description"`
	LastUpdatedDate  string `json:"last_updated_date"`
	UpdatedBy        string `json:"updated_by"`
	DataFrom         string `json:"data_from"`
	DataTo           string `json:"data_to"`
	PublishedAccount string `json:"published_account"`
}

// CreatedID is what the backend returns for a new dashboard.
type CreatedID struct {
	ID DashboardID `json:"id"`
}

// ParseDashboardID accepts ids typed by users, e.g. on the command line.
func ParseDashboardID(s string) (DashboardID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewErrInvalidRequestField("empty dashboard id")
	}
	if strings.ContainsAny(s, "/?#") {
		return "", NewErrInvalidRequestField(fmt.Sprintf("invalid dashboard id %q", s))
	}
	return DashboardID(s), nil
}
