package linkdown

import "testing"

func newMutator(doc *Document) (*LinkMutator, *SelectionTracker) {
	tracker := NewSelectionTracker(doc)
	return NewLinkMutator(doc, tracker), tracker
}

func TestMutator_InsertThenFindEnclosing(t *testing.T) {
	doc := FromText("see vc today")
	m, _ := newMutator(doc)

	doc.Select(4, 6)
	if !m.Insert(Normalize("vc.ru"), AttrOf("a title")) {
		t.Fatal("insert should succeed")
	}

	rec := m.FindEnclosing()
	if rec == nil {
		t.Fatal("expected an enclosing anchor after insert")
	}
	if href := rec.Href.Or(""); href != "http://vc.ru" {
		t.Fatalf("unexpected href %q", href)
	}
	if title, ok := rec.Title.Get(); !ok || title != "a title" {
		t.Fatalf("unexpected title %q set=%v", title, ok)
	}
	if doc.Text() != "see vc today" {
		t.Fatalf("visible text changed: %q", doc.Text())
	}
}

func TestMutator_InsertPreservesSetEmptyTitle(t *testing.T) {
	doc := FromText("see vc today")
	m, _ := newMutator(doc)

	doc.Select(4, 6)
	m.Insert("http://vc.ru", AttrOf(""))
	rec := m.FindEnclosing()
	if title, ok := rec.Title.Get(); !ok || title != "" {
		t.Fatalf("set-empty title lost: %q set=%v", title, ok)
	}

	doc2 := FromText("see vc today")
	m2, _ := newMutator(doc2)
	doc2.Select(4, 6)
	m2.Insert("http://vc.ru", Attr{})
	if m2.FindEnclosing().Title.IsSet() {
		t.Fatal("unset title became set")
	}
}

func TestMutator_InsertExpandsPartialSelectionInsideAnchor(t *testing.T) {
	doc := linkedDoc("read ", "the docs", "http://old.com", Attr{}, " now")
	m, _ := newMutator(doc)

	// select only "doc" inside the existing link, then edit the value
	doc.Select(9, 12)
	m.Insert("http://new.com", Attr{})

	rec := m.FindEnclosing()
	if rec == nil || rec.Href.Or("") != "http://new.com" {
		t.Fatalf("unexpected record %+v", rec)
	}
	region := doc.regionOf(rec)
	if region.Start != 5 || region.End != 13 {
		t.Fatalf("editing a sub-range should cover the whole link, got %+v", region)
	}
	if doc.Text() != "read the docs now" {
		t.Fatalf("visible text changed: %q", doc.Text())
	}
	// the old annotation is gone entirely
	for pos := 0; pos < doc.Len(); pos++ {
		if a := doc.anchorAt(pos); a != nil && a.Href.Or("") == "http://old.com" {
			t.Fatalf("old anchor survived at %d", pos)
		}
	}
}

func TestMutator_InsertWithoutSelectionIsRejected(t *testing.T) {
	doc := FromText("hello")
	m, _ := newMutator(doc)
	before := doc.Clone()

	if m.Insert("http://x.com", Attr{}) {
		t.Fatal("insert with no selection should be rejected")
	}
	doc.Collapse(2)
	if m.Insert("http://x.com", Attr{}) {
		t.Fatal("insert on a caret should be rejected")
	}
	if !doc.Equal(before) {
		t.Fatal("document changed on rejected insert")
	}
}

func TestMutator_InsertThenRemoveRoundTrip(t *testing.T) {
	doc := FromText("see vc today")
	m, _ := newMutator(doc)

	doc.Select(4, 6)
	m.Insert("http://vc.ru", Attr{})
	m.Remove()

	if doc.Text() != "see vc today" {
		t.Fatalf("visible text changed: %q", doc.Text())
	}
	if m.FindEnclosing() != nil {
		t.Fatal("anchor should be gone after remove")
	}
	if got := len(doc.Spans()); got != 1 {
		t.Fatalf("expected a single plain span, got %d", got)
	}
}

func TestMutator_RemoveIsNoOpOutsideAnchor(t *testing.T) {
	doc := linkedDoc("a", "b", "http://x.com", Attr{}, "c")
	m, _ := newMutator(doc)
	before := doc.Clone()

	doc.Select(0, 1)
	m.Remove()
	if !doc.Equal(before) {
		t.Fatal("remove outside an anchor mutated the document")
	}
}
