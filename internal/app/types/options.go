package types

// OptionSet holds the known distinct values per field.
// They are suggestions only; free text is still accepted everywhere.
type OptionSet struct {
	Categories        []string `json:"categories"`
	Clients           []string `json:"clients"`
	CreatedBys        []string `json:"created_bys"`
	UpdatedBys        []string `json:"updated_bys"`
	PublishedAccounts []string `json:"published_accounts"`
}

// For returns the suggestion list for a dashboard field name.
func (o OptionSet) For(field string) []string {
	switch field {
	case "category":
		return o.Categories
	case "client":
		return o.Clients
	case "created_by":
		return o.CreatedBys
	case "updated_by":
		return o.UpdatedBys
	case "published_account":
		return o.PublishedAccounts
	default:
		return nil
	}
}
