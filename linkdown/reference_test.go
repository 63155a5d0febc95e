package linkdown

import "testing"

func TestClassifyReference(t *testing.T) {
	cases := []struct {
		link string
		want ReferenceKind
	}{
		{"/general", RefNestedPath},
		{"/a/b/c", RefNestedPath},
		{"/", RefRootPath},
		{"#results", RefAnchor},
		{"#", RefAnchor},
		{"//cdn.example.com/x", RefProtocolRelative},
		{"[token]", RefEscapedToken},
		{"[a][b]", RefEscapedToken},
		{"vc.ru", RefExternal},
		{"http://vc.ru", RefExternal},
		{"", RefExternal},
		{"[", RefExternal},
		{"]", RefExternal},
	}
	for _, c := range cases {
		if got := ClassifyReference(c.link); got != c.want {
			t.Fatalf("ClassifyReference(%q) = %v, expected %v", c.link, got, c.want)
		}
	}
}

func TestClassifyReference_OrderMatters(t *testing.T) {
	// "//x" has a leading slash but the second slash makes it
	// protocol-relative, not a nested path
	if got := ClassifyReference("//host"); got != RefProtocolRelative {
		t.Fatalf("expected protocol-relative, got %v", got)
	}
	// three slashes match neither shape
	if got := ClassifyReference("///x"); got != RefExternal {
		t.Fatalf("expected external, got %v", got)
	}
}

func TestIsInternalReference(t *testing.T) {
	if !IsInternalReference("#top") {
		t.Fatal("expected #top to be internal")
	}
	if IsInternalReference("example.com") {
		t.Fatal("expected example.com to be external")
	}
}
