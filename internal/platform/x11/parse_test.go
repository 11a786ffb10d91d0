package x11

import (
	"reflect"
	"testing"

	"github.com/sessionctl/sessionctl/internal/model"
)

const sampleWindowList = `0x01e00003 -1 1711   0    0    1920 1080 thinkpad Desktop
0x02200006 -1 1802   0    1053 1920 27   thinkpad xfce4-panel
0x03a00007  0 2533   10   42   1280 720  thinkpad Mozilla Firefox
0x04000004  1 2710   -5   27   960  1053 thinkpad ~/src : bash — Konsole
0x04200001  2 0      100  100  300  200  N/A  Unmanaged splash
garbage line
0x04400001  2 3001   0    0    640  480  thinkpad 
0x04600001  3 3120   200  300  640  480  thinkpad   padded   title  
`

func TestParseWindowList(t *testing.T) {
	got := ParseWindowList([]byte(sampleWindowList))
	want := []model.Window{
		{ID: "0x01e00003", Desktop: -1, PID: 1711, Bounds: [4]int{0, 0, 1920, 1080}, Title: "Desktop"},
		{ID: "0x02200006", Desktop: -1, PID: 1802, Bounds: [4]int{0, 1053, 1920, 27}, Title: "xfce4-panel"},
		{ID: "0x03a00007", Desktop: 0, PID: 2533, Bounds: [4]int{10, 42, 1280, 720}, Title: "Mozilla Firefox"},
		{ID: "0x04000004", Desktop: 1, PID: 2710, Bounds: [4]int{-5, 27, 960, 1053}, Title: "~/src : bash — Konsole"},
		{ID: "0x04200001", Desktop: 2, PID: 0, Bounds: [4]int{100, 100, 300, 200}, Title: "Unmanaged splash"},
		{ID: "0x04400001", Desktop: 2, PID: 3001, Bounds: [4]int{0, 0, 640, 480}, Title: ""},
		{ID: "0x04600001", Desktop: 3, PID: 3120, Bounds: [4]int{200, 300, 640, 480}, Title: "padded   title  "},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseWindowList mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestParseWindowList_UntitledWindows(t *testing.T) {
	out := "0x01e00003  0 4242 0 0 640 480 host \n0x01e00004  0 4243 0 0 640 480 host xterm\n0x01e00005  1 4244 0 0 640 480 host\n"
	got := ParseWindowList([]byte(out))
	if len(got) != 3 {
		t.Fatalf("expected 3 windows, got %d: %+v", len(got), got)
	}
	if got[0].Title != "" || got[1].Title != "xterm" || got[2].Title != "" {
		t.Errorf("unexpected titles: %+v", got)
	}
	if got[2].PID != 4244 || got[2].Desktop != 1 {
		t.Errorf("unexpected last window: %+v", got[2])
	}
}

func TestParseWindowList_StripsNUL(t *testing.T) {
	got := ParseWindowList([]byte("0x01 0 42 0 0 10 10 host ti\x00tle\n"))
	if len(got) != 1 || got[0].Title != "title" {
		t.Errorf("got %+v", got)
	}
}

func TestParseWindowList_Empty(t *testing.T) {
	if got := ParseWindowList(nil); len(got) != 0 {
		t.Errorf("expected no windows, got %+v", got)
	}
}

const sampleXprop = `_NET_WM_USER_TIME(CARDINAL) = 5208417
_NET_WM_DESKTOP(CARDINAL) = 1
_NET_WM_STATE(ATOM) = _NET_WM_STATE_MAXIMIZED_HORZ, _NET_WM_STATE_FOCUSED, _NET_WM_STATE_HIDDEN
WM_STATE(WM_STATE):
		window state: Normal
WM_NAME(UTF8_STRING) = "Mozilla Firefox"
`

func TestParseStateAtoms(t *testing.T) {
	got := ParseStateAtoms([]byte(sampleXprop))
	want := []string{"_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_FOCUSED", "_NET_WM_STATE_HIDDEN"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStateAtoms_Absent(t *testing.T) {
	out := "WM_NAME(UTF8_STRING) = \"xterm\"\n_NET_WM_DESKTOP(CARDINAL) = 0\n"
	if got := ParseStateAtoms([]byte(out)); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestParseStateAtoms_EmptyValue(t *testing.T) {
	if got := ParseStateAtoms([]byte("_NET_WM_STATE(ATOM) = \n")); len(got) != 0 {
		t.Errorf("expected no atoms, got %v", got)
	}
}
