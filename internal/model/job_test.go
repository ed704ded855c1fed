package model

import "testing"

func TestJob_SearchText(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want string
	}{
		{
			name: "title company and tags",
			job:  Job{Title: "Senior Go Engineer", Company: "Acme", Tags: []string{"Golang", "Backend"}},
			want: "senior go engineer acme golang backend",
		},
		{
			name: "no tags",
			job:  Job{Title: "Designer", Company: "Beta", Tags: []string{}},
			want: "designer beta",
		},
		{
			name: "location and salary are not searchable",
			job:  Job{Title: "Dev", Company: "Gamma", Location: "Europe", Salary: "$50k", Tags: []string{}},
			want: "dev gamma",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.job.SearchText(); got != tt.want {
				t.Errorf("SearchText() = %q, want %q", got, tt.want)
			}
		})
	}
}
