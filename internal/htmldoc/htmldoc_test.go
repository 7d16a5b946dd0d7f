package htmldoc

import "testing"

func TestAbsURL(t *testing.T) {
	doc, err := Parse(`<html><body></body></html>`, "https://www.visitraleigh.com/events/?page=2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		ref  string
		want string
	}{
		{"/event/concert/12345/", "https://www.visitraleigh.com/event/concert/12345/"},
		{"https://other.example.com/x", "https://other.example.com/x"},
		{"?page=3", "https://www.visitraleigh.com/events/?page=3"},
		{"  /event/show/9/  ", "https://www.visitraleigh.com/event/show/9/"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := doc.AbsURL(tt.ref); got != tt.want {
			t.Errorf("AbsURL(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestAbsAttr(t *testing.T) {
	doc, err := Parse(
		`<html><body><a id="rel" href="/event/fair/77/">Fair</a><a id="bare">none</a></body></html>`,
		"https://www.visitraleigh.com/events/")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := doc.AbsAttr(doc.Find("#rel"), "href"); got != "https://www.visitraleigh.com/event/fair/77/" {
		t.Errorf("unexpected resolved href: %q", got)
	}
	if got := doc.AbsAttr(doc.Find("#bare"), "href"); got != "" {
		t.Errorf("expected empty string for missing attribute, got %q", got)
	}
}
