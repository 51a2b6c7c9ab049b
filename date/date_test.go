package date

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2020-01-05", New(2020, 1, 5), true},
		{"5 Jan 2020", New(2020, 1, 5), true},
		{"31 Dec 2019", New(2019, 12, 31), true},
		{"2020/01/05", Date{}, false},
		{"05-01-2020", Date{}, false},
		{"garbage", Date{}, false},
	}

	for _, c := range cases {
		got, err := Parse(c.in)
		if c.ok && err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", c.in, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2020, 3, 1), New(2020, 3, 2)
	if a.Compare(b) != -1 {
		t.Errorf("Compare(%v, %v) = %d, want -1", a, b, a.Compare(b))
	}
	if b.Compare(a) != 1 {
		t.Errorf("Compare(%v, %v) = %d, want 1", b, a, b.Compare(a))
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) = %d, want 0", a, a, a.Compare(a))
	}
}

func TestAddCrossesMonth(t *testing.T) {
	d := New(2020, 1, 31).Add(1)
	if d != New(2020, 2, 1) {
		t.Errorf("2020-01-31 + 1 = %v, want 2020-02-01", d)
	}
	if got := New(2020, 3, 1).Add(-1); got != New(2020, 2, 29) {
		t.Errorf("2020-03-01 - 1 = %v, want 2020-02-29", got)
	}
}

func TestPretty(t *testing.T) {
	if got := New(2020, 1, 5).Pretty(); got != "05/01/2020" {
		t.Errorf("Pretty() = %q, want %q", got, "05/01/2020")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(New(2020, 4, 6), New(2021, 4, 5))

	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Errorf("Range must include its boundaries")
	}
	if r.Contains(r.From.Add(-1)) {
		t.Errorf("Range must not include the day before From")
	}
	if r.Contains(r.To.Add(1)) {
		t.Errorf("Range must not include the day after To")
	}
}
