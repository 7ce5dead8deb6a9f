package rustimports

import (
	"strings"
	"testing"
)

const arrowInput = `use arrow::array::{
    ArrayRef,
    RecordBatch,
    RecordBatchOptions,
    new_null_array,
};
use arrow::compute::can_cast_types;
use arrow::datatypes::{
    DataType,
    Field,
    Schema,
    SchemaRef,
};`

func TestStreamlineHighArrow(t *testing.T) {
	want := `use arrow::{
    array::{new_null_array, ArrayRef, RecordBatch, RecordBatchOptions},
    compute::can_cast_types,
    datatypes::{DataType, Field, Schema, SchemaRef},
};`
	got := StreamlineHigh(arrowInput)
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineLowArrow(t *testing.T) {
	// Already grouped at the most specific level: low is a fixed point.
	got := StreamlineLow(arrowInput)
	if got != arrowInput {
		t.Fatalf("got:\n%s\nwant:\n%s", got, arrowInput)
	}
}

func TestStreamlineStd(t *testing.T) {
	input := `use std::io::{self, Read};
use std::io::BufReader;
use std::fmt::Display;`

	wantHigh := `use std::{
    io::{self, BufReader, Read},
    fmt::Display,
};`
	wantLow := `use std::fmt::Display;
use std::io::{
    BufReader,
    Read,
    self,
};`

	if got := StreamlineHigh(input); got != wantHigh {
		t.Fatalf("high:\n%s\nwant:\n%s", got, wantHigh)
	}
	if got := StreamlineLow(input); got != wantLow {
		t.Fatalf("low:\n%s\nwant:\n%s", got, wantLow)
	}
}

func TestStreamlineHighMixedDepth(t *testing.T) {
	// A bare item off the root must not be pulled under a deeper subpath.
	input := `use datafusion_common::tree_node::TreeNodeRecursion;
use datafusion_common::ScalarValue;`

	want := `use datafusion_common::{
    tree_node::TreeNodeRecursion,
    ScalarValue,
};`
	if got := StreamlineHigh(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineHighCommonSubpath(t *testing.T) {
	input := `use tokio::sync::mpsc::Sender;
use tokio::sync::oneshot::Receiver;
use tokio::sync::mpsc::channel;`

	want := `use tokio::sync::{
    mpsc::{channel, Sender},
    oneshot::Receiver,
};`
	if got := StreamlineHigh(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineLowSingletonHasNoBraces(t *testing.T) {
	input := "use foo::bar::Baz;"
	if got := StreamlineLow(input); got != input {
		t.Fatalf("got %q, want %q", got, input)
	}
}

func TestStreamlineLowTwoItemsSingleLine(t *testing.T) {
	input := `use foo::bar::Baz;
use foo::bar::Qux;`
	want := "use foo::bar::{Baz, Qux};"
	if got := StreamlineLow(input); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStreamlineLowSelfLast(t *testing.T) {
	input := `use std::io::self;
use std::io::Write;
use std::io::Read;`
	want := `use std::io::{
    Read,
    Write,
    self,
};`
	if got := StreamlineLow(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlinePubSeparate(t *testing.T) {
	input := `use foo::bar::A;
pub use foo::bar::B;`
	want := `use foo::bar::A;
pub use foo::bar::B;`
	if got := StreamlineLow(input); got != want {
		t.Fatalf("low:\n%s\nwant:\n%s", got, want)
	}
	if got := StreamlineHigh(input); got != want {
		t.Fatalf("high:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineHighRootOrderAcrossVisibility(t *testing.T) {
	input := `pub use alpha::x::X;
use zeta::y::Y;`
	want := `pub use alpha::x::X;
use zeta::y::Y;`
	if got := StreamlineHigh(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}

	// Same root: private precedes pub.
	input = `pub use alpha::x::X;
use alpha::y::Y;`
	want = `use alpha::y::Y;
pub use alpha::x::X;`
	if got := StreamlineHigh(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineGlobPassthrough(t *testing.T) {
	input := `use foo::bar::*;
use foo::bar::Baz;`
	want := `use foo::bar::*;
use foo::bar::Baz;`
	if got := StreamlineLow(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineAttributeGroupsLow(t *testing.T) {
	input := `#[cfg(test)]
use foo::bar::A;
#[cfg(test)]
use foo::bar::B;
use foo::bar::C;`
	want := `use foo::bar::C;
#[cfg(test)]
use foo::bar::{A, B};`
	if got := StreamlineLow(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineAttributeGroupsHigh(t *testing.T) {
	// Imports sharing an attribute consolidate with each other; bare
	// imports keep their own group and come first.
	input := `#[cfg(test)]
use foo::bar::A;
#[cfg(test)]
use foo::baz::B;
use foo::qux::C;`
	want := `use foo::qux::C;
#[cfg(test)]
use foo::{
    bar::A,
    baz::B,
};`
	if got := StreamlineHigh(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineAttributeSeparatesHigh(t *testing.T) {
	// Attributed and bare imports never merge, even under one root.
	input := `#[cfg(test)]
use foo::bar::A;
use foo::baz::B;`
	want := `use foo::baz::B;
#[cfg(test)]
use foo::bar::A;`
	if got := StreamlineHigh(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlinePassthroughLines(t *testing.T) {
	input := `// keep me
use foo::bar::A;
use foo::bar::B;
fn main() {}`
	want := `// keep me
fn main() {}

use foo::bar::{A, B};`
	if got := StreamlineLow(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineNoImportsUnchanged(t *testing.T) {
	tests := []string{
		"",
		"   \n  ",
		"fn main() {}\n",
		"use foo::bar::{A,\n", // unterminated: passthrough
	}
	for _, in := range tests {
		for _, policy := range []Policy{PolicyLow, PolicyHigh, PolicyUnique} {
			if got := Streamline(in, policy); got != in {
				t.Fatalf("policy %s changed %q to %q", policy, in, got)
			}
		}
	}
}

func TestStreamlineIdempotent(t *testing.T) {
	inputs := []string{
		arrowInput,
		"use std::io::{self, Read};\nuse std::io::BufReader;\nuse std::fmt::Display;",
		"#[cfg(test)]\nuse foo::bar::A;\nuse foo::bar::B;\nuse baz::*;",
	}
	for _, in := range inputs {
		for _, policy := range []Policy{PolicyLow, PolicyHigh, PolicyUnique} {
			once := Streamline(in, policy)
			twice := Streamline(once, policy)
			if once != twice {
				t.Fatalf("policy %s not idempotent:\nonce:\n%s\ntwice:\n%s", policy, once, twice)
			}
		}
	}
}

func TestStreamlineCoveragePreserved(t *testing.T) {
	input := `use arrow::array::ArrayRef;
use arrow::array::RecordBatch;
use std::fmt::Display;
use std::io::{self, Read};`

	for _, policy := range []Policy{PolicyLow, PolicyHigh} {
		out := Streamline(input, policy)
		got := qualifiedNames(t, out)
		want := qualifiedNames(t, input)
		if len(got) != len(want) {
			t.Fatalf("policy %s: %d names, want %d\n%s", policy, len(got), len(want), out)
		}
		for name := range want {
			if _, ok := got[name]; !ok {
				t.Fatalf("policy %s dropped %q:\n%s", policy, name, out)
			}
		}
	}
}

func qualifiedNames(t *testing.T, text string) map[string]struct{} {
	t.Helper()
	records, _ := Parse(strings.Split(text, "\n"))
	names := map[string]struct{}{}
	for _, rec := range records {
		ns, _ := canonicalNames(rec)
		for _, n := range ns {
			names[n] = struct{}{}
		}
	}
	return names
}
