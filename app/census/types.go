package census

// Row is one record of the population estimates export, as raw strings.
type Row struct {
	Line         int // 1-based line in the source file, header is line 1
	CategoryCode string
	StateName    string
	PlaceName    string
	Population   string
}
