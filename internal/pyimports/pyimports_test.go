package pyimports

import (
	"strings"
	"testing"
)

func TestStreamlineMergesFromImports(t *testing.T) {
	input := `from collections import defaultdict, Counter
from collections import OrderedDict`
	want := "from collections import Counter, OrderedDict, defaultdict"
	if got := Streamline(input); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStreamlineSimpleImports(t *testing.T) {
	input := `import os, sys
import json
import os`
	want := `import json
import os
import sys`
	if got := Streamline(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineMultilineParens(t *testing.T) {
	input := `from typing import (
    List,
    # mapping types
    Dict,

    Optional,
)
from typing import Any`
	want := "from typing import Any, Dict, List, Optional"
	if got := Streamline(input); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStreamlineLongListWraps(t *testing.T) {
	items := []string{
		"first_long_name", "second_long_name", "third_long_name",
		"fourth_long_name", "fifth_long_name", "sixth_long_name",
	}
	input := "from mymodule import " + strings.Join(items, ", ")
	got := Streamline(input)

	if !strings.HasPrefix(got, "from mymodule import (") {
		t.Fatalf("expected parenthesized block, got:\n%s", got)
	}
	if !strings.HasSuffix(got, ")") {
		t.Fatalf("expected closing paren, got:\n%s", got)
	}
	for _, it := range items {
		if !strings.Contains(got, "    "+it+",") {
			t.Fatalf("item %q missing trailing comma:\n%s", it, got)
		}
	}
}

func TestStreamlineSingleLineParens(t *testing.T) {
	input := "from collections import (defaultdict, Counter)"
	want := "from collections import Counter, defaultdict"
	if got := Streamline(input); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStreamlinePassthrough(t *testing.T) {
	input := `#!/usr/bin/env python3
import sys

def main():
    pass`
	want := `#!/usr/bin/env python3
def main():
    pass

import sys`
	if got := Streamline(input); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStreamlineNoImportsUnchanged(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"def main():\n    pass",
	}
	for _, in := range tests {
		if got := Streamline(in); got != in {
			t.Fatalf("changed %q to %q", in, got)
		}
	}
}

func TestStreamlineIdempotent(t *testing.T) {
	inputs := []string{
		"import os, sys\nfrom typing import List, Dict\nfrom typing import Optional",
		"from collections import defaultdict, Counter\nfrom collections import OrderedDict",
	}
	for _, in := range inputs {
		once := Streamline(in)
		if twice := Streamline(once); twice != once {
			t.Fatalf("not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
		}
	}
}
