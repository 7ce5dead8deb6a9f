package rustimports

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		in          []string
		wantRecords []Record
		wantRest    []string
	}{
		{
			name:        "single line",
			in:          []string{"use foo::Bar;"},
			wantRecords: []Record{{Text: "use foo::Bar;"}},
		},
		{
			name:        "pub use",
			in:          []string{"pub use foo::Bar;"},
			wantRecords: []Record{{Text: "pub use foo::Bar;", Pub: true}},
		},
		{
			name: "multi line braced",
			in: []string{
				"use foo::{",
				"    Bar,",
				"    Baz,",
				"};",
			},
			wantRecords: []Record{{Text: "use foo::{ Bar, Baz, };"}},
		},
		{
			name: "nested braces",
			in: []string{
				"use foo::{",
				"    bar::{A, B},",
				"    C,",
				"};",
			},
			wantRecords: []Record{{Text: "use foo::{ bar::{A, B}, C, };"}},
		},
		{
			name: "attribute binds to next import",
			in: []string{
				`#[cfg(test)]`,
				"use foo::Bar;",
			},
			wantRecords: []Record{{Attr: `#[cfg(test)]`, Text: "use foo::Bar;"}},
		},
		{
			name: "attribute without import passes through",
			in: []string{
				`#[cfg(test)]`,
				"fn helper() {}",
			},
			wantRest: []string{`#[cfg(test)]`, "fn helper() {}"},
		},
		{
			name: "unterminated block passes through",
			in: []string{
				"use foo::{",
				"    Bar,",
			},
			wantRest: []string{"use foo::{", "    Bar,"},
		},
		{
			name: "mixed content keeps order",
			in: []string{
				"// header",
				"use foo::Bar;",
				"",
				"fn main() {}",
			},
			wantRecords: []Record{{Text: "use foo::Bar;"}},
			wantRest:    []string{"// header", "", "fn main() {}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, rest := Parse(tt.in)
			if !reflect.DeepEqual(records, tt.wantRecords) {
				t.Fatalf("records=%#v, want %#v", records, tt.wantRecords)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Fatalf("rest=%#v, want %#v", rest, tt.wantRest)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		path string
		want []flatItem
	}{
		{path: "foo::Bar", want: []flatItem{{Base: "foo", Name: "Bar"}}},
		{path: "foo::bar::Baz", want: []flatItem{{Base: "foo::bar", Name: "Baz"}}},
		{
			path: "foo::{Bar, Baz}",
			want: []flatItem{{Base: "foo", Name: "Bar"}, {Base: "foo", Name: "Baz"}},
		},
		{
			path: "foo::{bar::{A, B}, C}",
			want: []flatItem{
				{Base: "foo::bar", Name: "A"},
				{Base: "foo::bar", Name: "B"},
				{Base: "foo", Name: "C"},
			},
		},
		{
			path: "foo::{self, Bar}",
			want: []flatItem{{Base: "foo", Name: "self"}, {Base: "foo", Name: "Bar"}},
		},
		{
			path: "foo::{bar::baz::Qux}",
			want: []flatItem{{Base: "foo::bar::baz", Name: "Qux"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := expandPath(tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestIsSpecial(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "foo", want: true},
		{path: "foo::*", want: true},
		{path: "foo::bar::*", want: true},
		{path: "foo::Bar", want: false},
		{path: "foo::{Bar, Baz}", want: false},
	}
	for _, tt := range tests {
		if got := isSpecial(tt.path); got != tt.want {
			t.Fatalf("isSpecial(%q)=%v, want %v", tt.path, got, tt.want)
		}
	}
}
