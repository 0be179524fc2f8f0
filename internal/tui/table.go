package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

var labels = map[string]string{
	"category":          "Category",
	"client":            "Client",
	"created_by":        "Created By",
	"search":            "Search topic",
	"data_from":         "Data From",
	"data_to":           "Data To",
	"last_updated_date": "Last Updated",
	"updated_by":        "Updated By",
	"published_account": "Published Account",
	"topic":             "Topic",
	"description":       "Description",
	"link":              "Link",
}

func fieldLabel(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return strings.ReplaceAll(field, "_", " ")
}

func tableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Topic", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Client", Width: 14},
		{Title: "Created By", Width: 12},
		{Title: "Updated By", Width: 12},
		{Title: "Last Updated", Width: 12},
		{Title: "Data Range", Width: 23},
	}
}

func tableRow(d types.Dashboard) table.Row {
	dataRange := ""
	if d.DataFrom != "" || d.DataTo != "" {
		dataRange = d.DataFrom + " - " + d.DataTo
	}
	return table.Row{
		d.ID.String(),
		d.Topic,
		d.Category,
		d.Client,
		d.CreatedBy,
		d.UpdatedBy,
		d.LastUpdatedDate,
		dataRange,
	}
}
