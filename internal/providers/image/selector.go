package image

// Selector routes generation requests to a backend. The requested backend
// wins when it has credentials; otherwise any credentialed hosted backend is
// used, DALL-E first, and the procedural renderer catches everything else.
type Selector struct {
	dalle      Generator
	stable     Generator
	procedural Generator
}

// NewSelector wires the three backends together. The procedural generator is
// required; the hosted backends may be nil or unconfigured.
func NewSelector(dalle, stable, procedural Generator) *Selector {
	return &Selector{dalle: dalle, stable: stable, procedural: procedural}
}

// Pick resolves a backend preference to a usable generator.
func (s *Selector) Pick(preference string) Generator {
	switch preference {
	case BackendDalle:
		if available(s.dalle) {
			return s.dalle
		}
	case BackendStableDiffusion:
		if available(s.stable) {
			return s.stable
		}
	case BackendProcedural:
		return s.procedural
	}
	if available(s.dalle) {
		return s.dalle
	}
	if available(s.stable) {
		return s.stable
	}
	return s.procedural
}

// Available reports backend readiness keyed by model identifier. The
// procedural renderer never goes away.
func (s *Selector) Available() map[string]bool {
	return map[string]bool{
		ModelDalle:            available(s.dalle),
		ModelStableDiffusion:  available(s.stable),
		"procedural_fallback": true,
	}
}

func available(g Generator) bool {
	return g != nil && g.Available()
}
