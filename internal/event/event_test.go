package event

import "testing"

func TestSortByIDDescending(t *testing.T) {
	items := []Item{
		{ID: 12, GUID: "a"},
		{ID: 99, GUID: "b"},
		{ID: UnknownID, GUID: "c"},
		{ID: 50, GUID: "d"},
	}

	SortByIDDescending(items)

	wantOrder := []string{"b", "d", "a", "c"}
	for i, want := range wantOrder {
		if items[i].GUID != want {
			t.Errorf("position %d: expected GUID %q, got %q", i, want, items[i].GUID)
		}
	}
}

func TestSortByIDDescendingIsStable(t *testing.T) {
	items := []Item{
		{ID: 7, GUID: "first"},
		{ID: 7, GUID: "second"},
		{ID: 7, GUID: "third"},
	}

	SortByIDDescending(items)

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if items[i].GUID != want {
			t.Errorf("position %d: expected GUID %q, got %q (ties must keep discovery order)", i, want, items[i].GUID)
		}
	}
}
