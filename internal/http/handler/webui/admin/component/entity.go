package component

import (
	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/core/model"
	common "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
)

// Cell is a table cell. Tag cells are rendered as colored labels.
type Cell struct {
	Text string
	Tag  string
}

type EntityRow struct {
	ID       string
	Display  string
	Cells    []Cell
	Selected bool
}

type DetailField struct {
	Label string
	Value string
}

type EntityDetail struct {
	ID     string
	Title  string
	Fields []DetailField
}

type DeleteIntent struct {
	Bulk    bool
	Targets []string
}

type EntityPageVModel struct {
	Layout        common.AdminLayoutVModel
	Kind          model.Kind
	BasePath      string
	Title         string
	Columns       []string
	Rows          []EntityRow
	Query         string
	Total         int
	SelectMode    bool
	SelectedCount int
	AllSelected   bool
	Intent        *DeleteIntent
	Detail        *EntityDetail
	Deleted       int
}

func EntityPage(vmodel EntityPageVModel) templ.Component {
	return page(vmodel.Layout, "entity_page", vmodel)
}
