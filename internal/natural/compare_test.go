package natural

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "numbers compare by value", a: "2", b: "10", want: -1},
		{name: "numbers compare by value reversed", a: "10", b: "2", want: 1},
		{name: "embedded numbers", a: "item2", b: "item10", want: -1},
		{name: "uppercase before lowercase", a: "Item2", b: "item2", want: -1},
		{name: "equal value shorter token first", a: "file01", b: "file1", want: 1},
		{name: "zero before padded zero", a: "0", b: "00", want: -1},
		{name: "padded seven after seven", a: "007", b: "7", want: 1},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "empty before anything", a: "", b: "a", want: -1},
		{name: "anything after empty", a: "0", b: "", want: 1},
		{name: "identical strings", a: "abc10def", b: "abc10def", want: 0},
		{name: "literal tokens byte-wise", a: "abc", b: "abd", want: -1},
		{name: "shorter literal token first", a: "a1", b: "ab", want: -1},
		{name: "digit before letter", a: "1a", b: "a1", want: -1},
		{name: "letter after digit", a: "x", b: "1", want: 1},
		{name: "prefix sorts first", a: "a", b: "a0", want: -1},
		{name: "later numeric token decides", a: "a10b1", b: "a10b01", want: -1},
		{name: "whitespace is a literal character", a: "x 1", b: "x1", want: 1},
		{
			name: "digit runs longer than uint64",
			a:    strings.Repeat("9", 23),
			b:    "1" + strings.Repeat("0", 23),
			want: -1,
		},
		{name: "non-ascii bytes are literal", a: "é2", b: "é10", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestLess(t *testing.T) {
	t.Parallel()

	if !Less("2", "10") {
		t.Error(`expected Less("2", "10") to be true`)
	}
	if Less("10", "2") {
		t.Error(`expected Less("10", "2") to be false`)
	}
	if Less("same", "same") {
		t.Error("expected Less on identical strings to be false")
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()

	rev := Reverse(Compare)

	if got := rev("2", "10"); got != 1 {
		t.Errorf("rev(2, 10) = %d, want 1", got)
	}
	if got := rev("10", "2"); got != -1 {
		t.Errorf("rev(10, 2) = %d, want -1", got)
	}
	if got := rev("x", "x"); got != 0 {
		t.Errorf("rev(x, x) = %d, want 0", got)
	}
}

func TestCompareSortsSlice(t *testing.T) {
	t.Parallel()

	lines := []string{"item10", "item2", "file01", "item1", "Item3", "file1"}
	slices.SortFunc(lines, Compare)

	want := []string{"Item3", "file1", "file01", "item1", "item2", "item10"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("sorted lines mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareIsTransitive(t *testing.T) {
	t.Parallel()

	corpus := []string{
		"", "0", "00", "1", "01", "2", "10", "a", "a0", "a1", "a01",
		"ab", "A", "B", "b2", "b10", "x 1", "x1", " ", "9a", "a b",
	}

	for _, a := range corpus {
		for _, b := range corpus {
			for _, c := range corpus {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 && Compare(a, c) > 0 {
					t.Errorf("not transitive: %q <= %q <= %q but %q > %q", a, b, c, a, c)
				}
			}
		}
	}
}

func FuzzCompare(f *testing.F) {
	seeds := [][2]string{
		{"2", "10"},
		{"item2", "item10"},
		{"file01", "file1"},
		{"", "a"},
		{"abc", "abc"},
	}
	for _, s := range seeds {
		f.Add(s[0], s[1])
	}

	f.Fuzz(func(t *testing.T, a, b string) {
		ab, ba := Compare(a, b), Compare(b, a)
		if ab != -ba {
			t.Fatalf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", a, b, ab, b, a, ba)
		}
		if (ab == 0) != (a == b) {
			t.Fatalf("Compare(%q, %q) = %d, equality mismatch", a, b, ab)
		}
		if Compare(a, a) != 0 {
			t.Fatalf("Compare(%q, %q) != 0", a, a)
		}
	})
}
