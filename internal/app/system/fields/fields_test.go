package fields

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"trims segments", " zero trust , vpn ", []string{"zero trust", "vpn"}},
		{"drops empties", "a,,b,", []string{"a", "b"}},
		{"only commas", ",,,", nil},
		{"blank", "   ", nil},
		{"single", "Nmap mastery", []string{"Nmap mastery"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinList_RoundTrip(t *testing.T) {
	items := []string{"zero trust", "vpn", "architecture"}
	if got := SplitList(JoinList(items)); !reflect.DeepEqual(got, items) {
		t.Errorf("round trip = %v, want %v", got, items)
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("25", 0); got != 25 {
		t.Errorf("ParseInt = %d", got)
	}
	if got := ParseInt("", 5); got != 5 {
		t.Errorf("blank should use default, got %d", got)
	}
	if got := ParseInt("abc", 5); got != 5 {
		t.Errorf("junk should use default, got %d", got)
	}
}

func TestChecked(t *testing.T) {
	for _, s := range []string{"on", "true", "1"} {
		if !Checked(s) {
			t.Errorf("Checked(%q) = false", s)
		}
	}
	for _, s := range []string{"", "off", "no"} {
		if Checked(s) {
			t.Errorf("Checked(%q) = true", s)
		}
	}
}
