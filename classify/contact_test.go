package classify

import (
	"testing"

	"github.com/tsawler/vitae/model"
)

func TestExtractContact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want model.Contact
	}{
		{
			name: "full block",
			in:   "Jane Doe\njane.doe@example.com | 555-123-4567\nlinkedin.com/in/jane-doe\nBoston, MA",
			want: model.Contact{
				Email:    "jane.doe@example.com",
				Phone:    "555-123-4567",
				LinkedIn: "https://www.linkedin.com/in/jane-doe",
				Location: "Boston, MA",
			},
		},
		{
			name: "parenthesized phone and state name",
			in:   "John Smith\n(801) 555-0199\nSalt Lake City, Utah",
			want: model.Contact{Phone: "(801) 555-0199", Location: "Salt Lake City, Utah"},
		},
		{
			name: "profile URL with scheme",
			in:   "https://www.LinkedIn.com/in/jsmith",
			want: model.Contact{LinkedIn: "https://www.linkedin.com/in/jsmith"},
		},
		{
			name: "first match wins",
			in:   "a@example.com b@example.com",
			want: model.Contact{Email: "a@example.com"},
		},
		{
			name: "nothing",
			in:   "Seasoned engineer with a passion for distributed systems",
			want: model.Contact{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractContact(tt.in)
			if got != tt.want {
				t.Errorf("ExtractContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactIsEmpty(t *testing.T) {
	if !ExtractContact("no details here").IsEmpty() {
		t.Error("expected an empty contact")
	}
	if ExtractContact("jane@example.com").IsEmpty() {
		t.Error("expected an email")
	}
}
