package menu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kapral18/ytsurf/internal/domain"
)

func plainPick(t *testing.T, input string, items []domain.MenuItem) (int, error) {
	t.Helper()
	var out strings.Builder
	p := NewPlain(strings.NewReader(input), &out)
	return p.Pick(context.Background(), items, domain.MenuOptions{})
}

// Two records can share a title; selection must resolve by position, never
// by matching the display string against its first occurrence.
func TestDuplicateTitlesResolveByIndex(t *testing.T) {
	items := []domain.MenuItem{
		{Index: 0, Display: "Same Title | chan | 3:00"},
		{Index: 1, Display: "Same Title | chan | 3:00"},
	}
	idx, err := plainPick(t, "2\n", items)
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if idx != 1 {
		t.Fatalf("Pick() = %d, want the second occurrence (1)", idx)
	}
}

func TestInvalidInputReprompts(t *testing.T) {
	items := []domain.MenuItem{
		{Index: 0, Display: "one"},
		{Index: 1, Display: "two"},
	}
	// Non-numeric, out of range, then a valid pick.
	idx, err := plainPick(t, "abc\n99\n0\n1\n", items)
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if idx != 0 {
		t.Fatalf("Pick() = %d, want 0", idx)
	}
}

func TestQuitAndEmptyCancel(t *testing.T) {
	items := []domain.MenuItem{{Index: 0, Display: "one"}}
	for _, input := range []string{"q\n", "Q\n", "\n"} {
		if _, err := plainPick(t, input, items); !errors.Is(err, domain.ErrCancelled) {
			t.Fatalf("input %q: err = %v, want ErrCancelled", input, err)
		}
	}
}

func TestEOFCancels(t *testing.T) {
	items := []domain.MenuItem{{Index: 0, Display: "one"}}
	if _, err := plainPick(t, "", items); !errors.Is(err, domain.ErrCancelled) {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
}

func TestEmptyListIsNoResults(t *testing.T) {
	if _, err := plainPick(t, "1\n", nil); !errors.Is(err, domain.ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}
