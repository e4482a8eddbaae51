package image

import (
	"context"
	"testing"
)

type stubGenerator struct {
	model     string
	available bool
}

func (s *stubGenerator) Model() string   { return s.model }
func (s *stubGenerator) Available() bool { return s.available }
func (s *stubGenerator) Generate(context.Context, GenerateRequest) (*Asset, error) {
	return &Asset{Model: s.model}, nil
}

func TestSelectorHonorsCredentialedPreference(t *testing.T) {
	dalle := &stubGenerator{model: ModelDalle, available: true}
	stable := &stubGenerator{model: ModelStableDiffusion, available: true}
	procedural := &stubGenerator{model: ModelProcedural, available: true}
	selector := NewSelector(dalle, stable, procedural)

	if got := selector.Pick(BackendStableDiffusion); got != stable {
		t.Fatalf("picked %s, want stable diffusion", got.Model())
	}
	if got := selector.Pick(BackendDalle); got != dalle {
		t.Fatalf("picked %s, want dalle", got.Model())
	}
	if got := selector.Pick(BackendProcedural); got != procedural {
		t.Fatalf("picked %s, want procedural", got.Model())
	}
}

func TestSelectorFallsBackToAnyCredentialedBackend(t *testing.T) {
	stable := &stubGenerator{model: ModelStableDiffusion, available: true}
	procedural := &stubGenerator{model: ModelProcedural, available: true}
	selector := NewSelector(&stubGenerator{model: ModelDalle}, stable, procedural)

	if got := selector.Pick(BackendDalle); got != stable {
		t.Fatalf("picked %s, want stable diffusion fallback", got.Model())
	}
}

func TestSelectorPrefersDalleWhenPreferenceUnusable(t *testing.T) {
	dalle := &stubGenerator{model: ModelDalle, available: true}
	stable := &stubGenerator{model: ModelStableDiffusion, available: true}
	procedural := &stubGenerator{model: ModelProcedural, available: true}
	selector := NewSelector(dalle, stable, procedural)

	if got := selector.Pick("unknown"); got != dalle {
		t.Fatalf("picked %s, want dalle", got.Model())
	}
}

func TestSelectorFallsBackToProcedural(t *testing.T) {
	procedural := &stubGenerator{model: ModelProcedural, available: true}
	selector := NewSelector(nil, nil, procedural)

	if got := selector.Pick(BackendDalle); got != procedural {
		t.Fatalf("picked %s, want procedural", got.Model())
	}

	avail := selector.Available()
	if avail[ModelDalle] || avail[ModelStableDiffusion] {
		t.Fatalf("hosted backends reported available: %v", avail)
	}
	if !avail["procedural_fallback"] {
		t.Fatalf("procedural fallback must always be available")
	}
}
