package auth

import (
	"bytes"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

// looseString accepts a JSON string, number or null.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
	default:
		*s = looseString(data)
	}
	return nil
}

// looseBool is true only for 1, "1" and true.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case bool:
		*b = looseBool(val)
	case float64:
		*b = val == 1
	case string:
		*b = val == "1"
	default:
		*b = false
	}
	return nil
}

// meResponse is the loosely typed who-am-I record.
type meResponse struct {
	ID            looseString `json:"id"`
	FirstName     looseString `json:"first_name"`
	LastName      looseString `json:"last_name"`
	Email         looseString `json:"email"`
	IsAdmin       looseBool   `json:"is_admin"`
	CanUpdateData looseBool   `json:"can_update_data"`
	Designation   looseString `json:"designation"`
	ProfilePic    looseString `json:"profile_pic"`
}

func (r meResponse) toIdentity() types.Identity {
	return types.Identity{
		UserID:        string(r.ID),
		FirstName:     string(r.FirstName),
		LastName:      string(r.LastName),
		Email:         string(r.Email),
		IsAdmin:       bool(r.IsAdmin),
		CanUpdateData: bool(r.CanUpdateData),
		Designation:   string(r.Designation),
		ProfilePic:    string(r.ProfilePic),
	}
}
