package models

import "testing"

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"strict", ModeStrict, false},
		{"best", ModeBest, false},
		{"hype", ModeHype, false},
		{"", ModeStrict, false},
		{"  Strict  ", ModeStrict, false},
		{"HYPE", ModeHype, false},
		{"bestest", "", true},
		{"all", "", true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMode_Label(t *testing.T) {
	cases := []struct {
		mode Mode
		want string
	}{
		{ModeStrict, "Top Local Picks"},
		{ModeBest, "Best Available"},
		{ModeHype, "Hype"},
		{Mode("other"), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.mode.Label(); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.mode, got, tc.want)
		}
	}
}
