package erd

// ExampleRelationships returns a small three-table schema used by the
// example command and in documentation.
func ExampleRelationships() []Relationship {
	return []Relationship{
		Rel("Table A", "Field 1", "Table B", "Field 4"),
		Rel("Table A", "Field 2", "Table B", "Field 3"),
		Rel("Table B", "Field 1", "Table C", "Field 1"),
		Rel("Table A", "Field 1", "Table C", "Field 4"),
	}
}
