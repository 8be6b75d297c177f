package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/launchplanner/launchplanner-server/internal/domain"
)

func TestLeadsToCSV(t *testing.T) {
	tests := []struct {
		name  string
		leads []domain.Lead
		want  string
	}{
		{
			name:  "header only",
			leads: nil,
			want:  "ID,Product ID,Email,Name,Source,Created At",
		},
		{
			name: "single lead",
			leads: []domain.Lead{{
				ID:        "1",
				ProductID: "p1",
				Email:     "a@x.com",
				Name:      "A",
				Source:    "web",
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
			want: "ID,Product ID,Email,Name,Source,Created At\n" +
				"1,p1,a@x.com,A,web,2024-01-01T00:00:00Z",
		},
		{
			name: "missing optional fields render empty",
			leads: []domain.Lead{
				{ID: "1", ProductID: "p1", Email: "a@x.com", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
				{ID: "2", ProductID: "p1", Email: "b@x.com", Source: "event", CreatedAt: time.Date(2024, 2, 3, 4, 5, 6, 7000000, time.UTC)},
			},
			want: "ID,Product ID,Email,Name,Source,Created At\n" +
				"1,p1,a@x.com,,,2024-01-01T00:00:00Z\n" +
				"2,p1,b@x.com,,event,2024-02-03T04:05:06.007Z",
		},
		{
			name: "commas are not escaped",
			leads: []domain.Lead{
				{ID: "1", ProductID: "p1", Email: "a@x.com", Name: "Doe, Jane", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
			want: "ID,Product ID,Email,Name,Source,Created At\n" +
				"1,p1,a@x.com,Doe, Jane,,2024-01-01T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeadsToCSV(tt.leads))
		})
	}
}

func TestLeadsToCSV_ConvertsToUTC(t *testing.T) {
	plus2 := time.FixedZone("plus2", 2*60*60)
	csv := LeadsToCSV([]domain.Lead{{ID: "1", CreatedAt: time.Date(2024, 1, 1, 2, 0, 0, 0, plus2)}})

	assert.Contains(t, csv, ",2024-01-01T00:00:00Z")
}
