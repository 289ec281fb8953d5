package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolutionTiers(t *testing.T) {
	formats := []Format{
		{ID: "a", Height: 480},
		{ID: "b", Height: 1080},
		{ID: "c", Height: 480},
		{ID: "d", Height: 720},
		{ID: "audio", Height: 0},
		{ID: "sb", Height: -1},
	}
	want := []int{1080, 720, 480}
	if diff := cmp.Diff(want, ResolutionTiers(formats)); diff != "" {
		t.Fatalf("tier mismatch (-want +got):\n%s", diff)
	}
}

func TestResolutionTiersEmpty(t *testing.T) {
	if got := ResolutionTiers(nil); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestFormatForHeight(t *testing.T) {
	want := "bestvideo[height<=1080]+bestaudio/best[height<=1080]"
	if got := FormatForHeight(1080); got != want {
		t.Fatalf("FormatForHeight = %q, want %q", got, want)
	}
}
