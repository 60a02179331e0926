package service

// columnSet keeps names in first-appearance order.
type columnSet struct {
	names []string
	index map[string]int
}

func newColumnSet() *columnSet {
	return &columnSet{names: []string{}, index: map[string]int{}}
}

func (c *columnSet) add(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	c.index[name] = len(c.names)
	c.names = append(c.names, name)
	return len(c.names) - 1
}

func (c *columnSet) len() int {
	return len(c.names)
}

// setCell stores v at position i, growing row as needed.
func setCell[T any](row []T, i int, v T) []T {
	for len(row) <= i {
		var zero T
		row = append(row, zero)
	}
	row[i] = v
	return row
}
