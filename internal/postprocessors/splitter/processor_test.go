package splitter

import (
	"context"
	"strings"
	"testing"

	"github.com/custodia-labs/topica/internal/core/domain"
)

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = "w" + string(rune('a'+i%26))
	}
	return strings.Join(w, " ")
}

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		p := New()
		if p.windowSize != DefaultWindowSize {
			t.Errorf("expected windowSize %d, got %d", DefaultWindowSize, p.windowSize)
		}
		if p.overlap != 0 {
			t.Errorf("expected no overlap, got %d", p.overlap)
		}
	})

	t.Run("overlap exceeds window", func(t *testing.T) {
		p := New(WithWindowSize(8), WithOverlap(20))
		if p.overlap != 2 {
			t.Errorf("expected overlap reduced to 2, got %d", p.overlap)
		}
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		p := New(WithWindowSize(0), WithOverlap(-1))
		if p.windowSize != DefaultWindowSize || p.overlap != 0 {
			t.Errorf("expected defaults, got %d/%d", p.windowSize, p.overlap)
		}
	})
}

func TestProcessor_Name(t *testing.T) {
	if got := New().Name(); got != "splitter" {
		t.Errorf("expected splitter, got %q", got)
	}
}

func TestProcessor_Process_ShortDocumentsPassThrough(t *testing.T) {
	in := []domain.Document{{ID: "a", Raw: "one two"}, {ID: "b", Raw: ""}}

	out, err := New(WithWindowSize(2)).Process(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Errorf("expected documents unchanged, got %+v", out)
	}
}

func TestProcessor_Process_Splits(t *testing.T) {
	in := []domain.Document{
		{ID: "first", Title: "Notes", Raw: "a b c d e f g", Metadata: map[string]any{"row": 3}},
		{ID: "second", Raw: "x y"},
	}

	out, err := New(WithWindowSize(3)).Process(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a b c", "d e f", "g", "x y"}
	if len(out) != len(want) {
		t.Fatalf("expected %d documents, got %d", len(want), len(out))
	}
	for i, w := range want {
		if out[i].Raw != w {
			t.Errorf("piece %d: expected %q, got %q", i, w, out[i].Raw)
		}
	}
	if out[1].Title != "Notes (part 2)" {
		t.Errorf("unexpected title %q", out[1].Title)
	}
	if out[2].Metadata[MetaParentID] != "first" || out[2].Metadata[MetaPart] != 3 {
		t.Errorf("unexpected metadata %v", out[2].Metadata)
	}
	if out[0].Metadata["row"] != 3 {
		t.Error("parent metadata should be copied")
	}
	if _, ok := in[0].Metadata[MetaPart]; ok {
		t.Error("parent metadata should not be modified")
	}
	if out[0].ID == "first" || out[0].ID == out[1].ID {
		t.Error("pieces should get fresh IDs")
	}
}

func TestProcessor_Process_Overlap(t *testing.T) {
	in := []domain.Document{{Raw: "a b c d e f"}}

	out, err := New(WithWindowSize(4), WithOverlap(2)).Process(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a b c d", "c d e f"}
	if len(out) != len(want) {
		t.Fatalf("expected %d pieces, got %d: %+v", len(want), len(out), out)
	}
	for i, w := range want {
		if out[i].Raw != w {
			t.Errorf("piece %d: expected %q, got %q", i, w, out[i].Raw)
		}
	}
}

func TestProcessor_Process_KeepsEveryWord(t *testing.T) {
	text := words(1000)

	out, err := New(WithWindowSize(128)).Process(context.Background(), []domain.Document{{Raw: text}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var joined []string
	for _, d := range out {
		joined = append(joined, d.Raw)
	}
	if strings.Join(joined, " ") != text {
		t.Error("pieces without overlap should reassemble the original text")
	}
	if len(out) != 8 {
		t.Errorf("expected 8 pieces, got %d", len(out))
	}
}

func TestProcessor_Process_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Process(ctx, []domain.Document{{Raw: "x"}})
	if err == nil {
		t.Error("expected context error")
	}
}
