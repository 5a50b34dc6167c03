package shelf

// MenuItem is the stock Item implementation.
type MenuItem struct {
	Text          string      // Display text for the item
	SortKey       string      // Key used for letter jumps; Text when empty
	IconFilename  string      // Path to the icon drawn by the layout
	Selected      bool        // Selection flag shown by the layout
	Metadata      interface{} // Application-specific data attached to the item
	ImageFilename string      // Path to artwork shown while the item is focused
}

func (m *MenuItem) Label() string {
	return m.Text
}

func (m *MenuItem) SortLabel() string {
	if m.SortKey != "" {
		return m.SortKey
	}
	return m.Text
}

// Icon returns the icon path drawn next to the label.
func (m *MenuItem) Icon() string {
	return m.IconFilename
}

// MenuItems wraps plain strings as items.
func MenuItems(labels ...string) []Item {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = &MenuItem{Text: l}
	}
	return items
}
