package platform

import "testing"

func TestTarget_Selector(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{TitleTarget("Mozilla Firefox"), "Mozilla Firefox"},
		{TitleTarget(`say "hi"; rm -rf ~`), `say "hi"; rm -rf ~`},
		{ActiveTarget(), ":ACTIVE:"},
		{Target{Title: "ignored", Active: true}, ":ACTIVE:"},
	}
	for _, tt := range tests {
		if got := tt.target.Selector(); got != tt.want {
			t.Errorf("%+v.Selector() = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestTarget_String(t *testing.T) {
	if got := ActiveTarget().String(); got != "active window" {
		t.Errorf("got %q", got)
	}
	if got := TitleTarget("xterm").String(); got != "window xterm" {
		t.Errorf("got %q", got)
	}
}
