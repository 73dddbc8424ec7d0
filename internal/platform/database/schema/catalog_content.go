package schema

// CatalogContentTable represents one of the 'catalog.*' content tables.
//
// Projects, videos and achievements share the same column layout and differ
// only by table name, so a single descriptor type serves all three.
type CatalogContentTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	Content     string
	Category    string
	Thumbnail   string
	ImageURLs   string
	PreviewLink string
	Href        string
	Frameworks  string
	CreatedAt   string
	UpdatedAt   string
}

// newCatalogContentTable builds the descriptor for a catalog table name.
func newCatalogContentTable(table string) CatalogContentTable {
	return CatalogContentTable{
		Table:       table,
		ID:          "id",
		Title:       "title",
		Slug:        "slug",
		Description: "description",
		Content:     "content",
		Category:    "category",
		Thumbnail:   "thumbnail",
		ImageURLs:   "imageurls",
		PreviewLink: "previewlink",
		Href:        "href",
		Frameworks:  "frameworks",
		CreatedAt:   "createdat",
		UpdatedAt:   "updatedat",
	}
}

// CatalogProject is the schema definition for catalog.project
var CatalogProject = newCatalogContentTable("catalog.project")

// CatalogVideo is the schema definition for catalog.video
var CatalogVideo = newCatalogContentTable("catalog.video")

// CatalogAchievement is the schema definition for catalog.achievement
var CatalogAchievement = newCatalogContentTable("catalog.achievement")

// Columns returns the selectable columns in scan order.
func (t CatalogContentTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Content, t.Category, t.Thumbnail,
		t.ImageURLs, t.PreviewLink, t.Href, t.Frameworks, t.CreatedAt, t.UpdatedAt,
	}
}
