package data

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Types        []string // e.g., "float", "int", "string"
	NonNull      []int
}

// Schema reports column names, dtypes and non-null counts.
func (d *Dataset) Schema() Schema {
	names := d.Frame.Names()
	types := d.Frame.Types()

	s := Schema{
		FeatureNames: names,
		Types:        make([]string, len(names)),
		NonNull:      make([]int, len(names)),
	}
	for i, name := range names {
		s.Types[i] = string(types[i])
		for _, missing := range d.Frame.Col(name).IsNaN() {
			if !missing {
				s.NonNull[i]++
			}
		}
	}
	return s
}
