package image

import "testing"

func TestEnhanceDallePrompt(t *testing.T) {
	got := EnhanceDallePrompt("fantasy sword", "pixel")
	want := "fantasy sword, pixel art style, 8-bit, retro gaming, game asset"
	if got != want {
		t.Fatalf("prompt = %q, want %q", got, want)
	}
}

func TestEnhanceDallePromptUnknownStyle(t *testing.T) {
	got := EnhanceDallePrompt("fantasy sword", "baroque")
	want := "fantasy sword, game asset"
	if got != want {
		t.Fatalf("prompt = %q, want %q", got, want)
	}
}

func TestEnhanceStableDiffusionPrompt(t *testing.T) {
	got := EnhanceStableDiffusionPrompt("wooden shield", "Cartoon")
	want := "wooden shield, cartoon illustration, vibrant colors, stylized, game asset, high quality"
	if got != want {
		t.Fatalf("prompt = %q, want %q", got, want)
	}
}

func TestSnapDalleSize(t *testing.T) {
	cases := []struct {
		width, height int
		want          string
	}{
		{512, 512, "512x512"},
		{1024, 1024, "1024x1024"},
		{800, 600, "1024x1024"},
		{0, 0, "1024x1024"},
	}
	for _, tc := range cases {
		if got := SnapDalleSize(tc.width, tc.height); got != tc.want {
			t.Errorf("SnapDalleSize(%d, %d) = %q, want %q", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestNormalizeBackend(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dalle", BackendDalle},
		{"DALL-E-3", BackendDalle},
		{"stable_diffusion", BackendStableDiffusion},
		{"stability", BackendStableDiffusion},
		{"procedural", BackendProcedural},
		{"", BackendDalle},
		{"midjourney", BackendDalle},
	}
	for _, tc := range cases {
		if got := NormalizeBackend(tc.in, BackendDalle); got != tc.want {
			t.Errorf("NormalizeBackend(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
