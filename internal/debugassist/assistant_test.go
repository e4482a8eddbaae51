package debugassist

import (
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestAnalyzeKnownError(t *testing.T) {
	assistant := NewWithClock(fixedClock)

	result := assistant.Analyze("NullReferenceException: Object reference not set", "player.GetComponent<Rigidbody>()", "unity")
	if result.Analysis != "Attempting to access a member on a null object reference" {
		t.Fatalf("analysis = %q", result.Analysis)
	}
	if len(result.Solutions) != 3 {
		t.Fatalf("solutions = %v", result.Solutions)
	}
	if len(result.Documentation) != 1 || result.Documentation[0] != "https://docs.unity3d.com/Manual/NullReferenceException.html" {
		t.Fatalf("documentation = %v", result.Documentation)
	}
	if len(result.SessionID) != 12 {
		t.Fatalf("session id %q, want 12 hex chars", result.SessionID)
	}
}

func TestAnalyzeMatchIsCaseInsensitive(t *testing.T) {
	assistant := NewWithClock(fixedClock)

	result := assistant.Analyze("caught indexoutofrangeexception in update loop", "", "unity")
	if result.Analysis != "Trying to access an array element that doesn't exist" {
		t.Fatalf("analysis = %q", result.Analysis)
	}
}

func TestAnalyzeUnknownError(t *testing.T) {
	assistant := NewWithClock(fixedClock)

	result := assistant.Analyze("segmentation fault in native plugin", "", "unity")
	if result.Analysis != "Unknown error type" {
		t.Fatalf("analysis = %q", result.Analysis)
	}
	if len(result.Solutions) != 2 {
		t.Fatalf("solutions = %v", result.Solutions)
	}
	if len(result.Documentation) != 0 {
		t.Fatalf("documentation = %v, want empty", result.Documentation)
	}
}

func TestEngineTips(t *testing.T) {
	assistant := NewWithClock(fixedClock)

	godot := assistant.Analyze("some error", "", "godot")
	if godot.Engine != "godot" {
		t.Fatalf("engine = %q", godot.Engine)
	}
	if godot.EngineTips[0] != "Use print() statements for debugging" {
		t.Fatalf("tips = %v", godot.EngineTips)
	}

	unknown := assistant.Analyze("some error", "", "cryengine")
	if unknown.Engine != "unity" {
		t.Fatalf("engine = %q, want unity fallback", unknown.Engine)
	}
	if unknown.EngineTips[0] != "Use Debug.Log() for runtime debugging" {
		t.Fatalf("tips = %v", unknown.EngineTips)
	}
}

func TestEngineDisplayName(t *testing.T) {
	if got := EngineDisplayName("unreal"); got != "Unreal" {
		t.Fatalf("display name = %q", got)
	}
	if got := EngineDisplayName(""); got != "Unity" {
		t.Fatalf("display name = %q", got)
	}
}

func TestSessionIDVariesWithTime(t *testing.T) {
	a := NewSessionID("boom", time.Unix(0, 1))
	b := NewSessionID("boom", time.Unix(0, 2))
	if a == b {
		t.Fatalf("ids should differ across timestamps")
	}
	for _, c := range a {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("id %q contains non-hex char %q", a, c)
		}
	}
}
