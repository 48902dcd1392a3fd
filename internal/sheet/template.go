package sheet

import (
	"github.com/jonathan/summary-agent/internal/types"
)

// SampleTable returns the example roster offered to users as a starting template.
func SampleTable() *Table {
	header := append([]string{"email", "salutation_name", "gender", "level"}, competencyColumns()...)

	return &Table{
		Header: header,
		Rows: [][]string{
			{"irene.a@example.com", "Irene", "F", "Director", "3.66", "3.51", "3.53", "3.38", "3.3", "3.29", "2.97", "3.42"},
			{"jonas.k@example.com", "Dr. Jonas", "M", "Manager", "3.23", "3.52", "3.28", "2.9", "3.06", "3.2", "3.02", "3.29"},
			{"khasiba.m@example.com", "Khasiba", "F", "Specialist", "3.56", "3.11", "3.08", "2.93", "3.55", "3.34", "3", "3.24"},
		},
	}
}

// WriteSampleTemplate writes SampleTable to path.
func WriteSampleTemplate(path string) error {
	return WriteXLSX(path, DefaultOutputSheet, SampleTable(), competencyColumns()...)
}

func competencyColumns() []string {
	var names []string
	for _, c := range types.AllCompetencies() {
		names = append(names, string(c))
	}
	return names
}
