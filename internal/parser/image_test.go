package parser

import "testing"

func TestExtractImageURL(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "relative src resolved against page URL",
			html: `<div class="card"><img src="/images/events/concert-hero.jpg"></div>`,
			want: "https://www.visitraleigh.com/images/events/concert-hero.jpg",
		},
		{
			name: "icon substring rejected",
			html: `<div class="card"><img src="https://cdn.example.com/assets/icon-calendar.png"></div>`,
			want: "",
		},
		{
			name: "logo substring rejected",
			html: `<div class="card"><img src="https://cdn.example.com/assets/site-logo-large.png"></div>`,
			want: "",
		},
		{
			name: "uppercase Logo passes the case-sensitive filter",
			html: `<div class="card"><img src="https://cdn.example.com/assets/Logo-partner.png"></div>`,
			want: "https://cdn.example.com/assets/Logo-partner.png",
		},
		{
			name: "exactly twenty characters rejected",
			html: `<div class="card"><img src="https://x.co/123.jpg"></div>`,
			want: "",
		},
		{
			name: "twenty-one characters accepted",
			html: `<div class="card"><img src="https://x.co/1234.jpg"></div>`,
			want: "https://x.co/1234.jpg",
		},
		{
			name: "no fallback to a second image",
			html: `<div class="card"><img src="/icon.png"><img src="https://cdn.example.com/events/fair.jpg"></div>`,
			want: "",
		},
		{
			name: "no image at all",
			html: `<div class="card"><h3>Text only</h3></div>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.html)
			if got := ExtractImageURL(doc, firstMatch(t, doc, ".card")); got != tt.want {
				t.Errorf("expected image URL %q, got %q", tt.want, got)
			}
		})
	}
}
