package shelf

// Item is an opaque handle to externally owned display data. Containers
// only read the labels; everything else stays with the data source.
type Item interface {
	Label() string
	SortLabel() string
}
