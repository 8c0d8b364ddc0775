package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDateRange(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   DateRange
		wantOK bool
	}{
		{"year range", "2020-2023", DateRange{Start: "2020", End: "2023"}, true},
		{"month range", "Jan 2020 - Mar 2023", DateRange{Start: "Jan 2020", End: "Mar 2023"}, true},
		{"full month names", "January 2020 to December 2022", DateRange{Start: "January 2020", End: "December 2022"}, true},
		{"numeric months", "01/2020 - 06/2023", DateRange{Start: "01/2020", End: "06/2023"}, true},
		{"en dash", "2019 – 2021", DateRange{Start: "2019", End: "2021"}, true},
		{"present", "2020 - Present", DateRange{Start: "2020", Current: true}, true},
		{"current", "Mar 2021 - current", DateRange{Start: "Mar 2021", Current: true}, true},
		{"no range", "Software Engineer", DateRange{}, false},
		{"single date", "May 2023", DateRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := extractDateRange(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractDateRangeKeepsRest(t *testing.T) {
	_, rest, ok := extractDateRange("2020-2023 | New York, NY")
	require.True(t, ok)
	assert.Equal(t, "New York, NY", rest)
}

func TestIsDateOnlyLine(t *testing.T) {
	assert.True(t, isDateOnlyLine("2020-2023"))
	assert.True(t, isDateOnlyLine("Jan 2020 - Present"))
	assert.True(t, isDateOnlyLine("May 2023"))
	assert.False(t, isDateOnlyLine("Software Engineer at Tech Corp"))
	assert.False(t, isDateOnlyLine("Led team of 5 developers since 2020-2021 reorg"))
	assert.False(t, isDateOnlyLine(""))
}

func TestFindDateToken(t *testing.T) {
	assert.Equal(t, "May 2023", findDateToken("Graduated May 2023 with honors"))
	assert.Equal(t, "2019", findDateToken("Class of 2019"))
	assert.Equal(t, "", findDateToken("no dates here"))
}
