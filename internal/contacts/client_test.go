package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	people "google.golang.org/api/people/v1"
)

func TestFormatPerson(t *testing.T) {
	tests := []struct {
		name   string
		person *people.Person
		want   string
	}{
		{
			name: "full contact",
			person: &people.Person{
				Names:          []*people.Name{{DisplayName: "김철수"}},
				EmailAddresses: []*people.EmailAddress{{Value: "cskim@example.com"}},
				Organizations:  []*people.Organization{{Name: "ACME", Department: "Platform", Title: "Engineer"}},
			},
			want: "김철수 (ACME, Platform, Engineer) <cskim@example.com>",
		},
		{
			name: "partial organization",
			person: &people.Person{
				Names:         []*people.Name{{DisplayName: "Alice"}},
				Organizations: []*people.Organization{{Title: "PM"}},
			},
			want: "Alice (PM)",
		},
		{
			name: "email only",
			person: &people.Person{
				EmailAddresses: []*people.EmailAddress{{Value: "bob@example.com"}},
			},
			want: "No Name <bob@example.com>",
		},
		{
			name:   "empty person",
			person: &people.Person{},
			want:   "No Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPerson(tt.person))
		})
	}
}
