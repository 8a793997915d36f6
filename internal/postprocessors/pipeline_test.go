package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// mockProcessor appends its name to every document's text, or fails.
type mockProcessor struct {
	name string
	err  error
}

func (m *mockProcessor) Name() string {
	return m.name
}

func (m *mockProcessor) Process(_ context.Context, docs []domain.Document) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Document, len(docs))
	for i, d := range docs {
		d.Raw += m.name
		out[i] = d
	}
	return out, nil
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 processors, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline(&mockProcessor{name: "a"})
	p.Add(&mockProcessor{name: "b"})

	if p.Len() != 2 {
		t.Errorf("expected 2 processors, got %d", p.Len())
	}
	if names := p.Names(); names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestPipeline_Process_EmptyPipeline(t *testing.T) {
	docs := []domain.Document{{Raw: "x"}}

	out, err := NewPipeline().Process(context.Background(), docs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Raw != "x" {
		t.Errorf("expected documents unchanged, got %+v", out)
	}
}

func TestPipeline_Process_RunsInOrder(t *testing.T) {
	p := NewPipeline(&mockProcessor{name: "1"}, &mockProcessor{name: "2"})

	out, err := p.Process(context.Background(), []domain.Document{{Raw: "x"}, {Raw: "y"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Raw != "x12" || out[1].Raw != "y12" {
		t.Errorf("unexpected output %+v", out)
	}
}

func TestPipeline_Process_ProcessorError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPipeline(&mockProcessor{name: "ok"}, &mockProcessor{name: "bad", err: boom})

	out, err := p.Process(context.Background(), []domain.Document{{Raw: "x"}})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped boom, got %v", err)
	}
	if out != nil {
		t.Error("expected nil output on error")
	}
}
