package discogs

// Pagination is the paging block Discogs attaches to every list response.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Items   int `json:"items"`
}

// CollectionResponse is one page of a user's collection folder.
// Pagination is a pointer so a missing block can be told apart from page 1 of 0.
type CollectionResponse struct {
	Pagination *Pagination         `json:"pagination"`
	Releases   []CollectionRelease `json:"releases"`
}

// CollectionRelease is a single collection instance as reported by Discogs.
type CollectionRelease struct {
	ID               int              `json:"id"`
	InstanceID       int              `json:"instance_id"`
	FolderID         int              `json:"folder_id"`
	Rating           int              `json:"rating"`
	DateAdded        string           `json:"date_added"`
	Notes            []Note           `json:"notes"`
	BasicInformation BasicInformation `json:"basic_information"`
}

// Note is a free-text collection field value (field_id 3 is the default notes field).
type Note struct {
	FieldID int    `json:"field_id"`
	Value   string `json:"value"`
}

// BasicInformation carries the release metadata nested in a collection entry.
type BasicInformation struct {
	ID         int      `json:"id"`
	MasterID   int      `json:"master_id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Country    string   `json:"country"`
	Thumb      string   `json:"thumb"`
	CoverImage string   `json:"cover_image"`
	Artists    []Artist `json:"artists"`
	Labels     []Label  `json:"labels"`
	Formats    []Format `json:"formats"`
}

// Artist is one credited contributor. Join holds the connector printed
// before the next contributor ("&", "feat.", "with", ...).
type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Anv  string `json:"anv"`
	Join string `json:"join"`
	Role string `json:"role"`
}

// Label is a release label credit.
type Label struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	CatNo string `json:"catno"`
}

// Format describes one physical format of a release.
// Qty is a string in the API ("1", "2", ...).
type Format struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Descriptions []string `json:"descriptions"`
}

// FoldersResponse is the folder listing for a user.
type FoldersResponse struct {
	Folders []Folder `json:"folders"`
}

// Folder is a collection folder. Folder 0 is the built-in "All" folder.
type Folder struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PriceValue is a money amount with its currency.
type PriceValue struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

// PriceStats is the marketplace stats payload for a release.
// LowestPrice is nil when nothing is for sale.
type PriceStats struct {
	LowestPrice     *PriceValue `json:"lowest_price"`
	NumForSale      int         `json:"num_for_sale"`
	BlockedFromSale bool        `json:"blocked_from_sale"`
}
