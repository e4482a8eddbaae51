package debugassist

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pattern describes a known error class and the guidance attached to it.
type Pattern struct {
	Name          string
	Description   string
	Solutions     []string
	Documentation []string
}

// Result is the full analysis returned for one error report.
type Result struct {
	SessionID     string
	Engine        string
	Analysis      string
	Solutions     []string
	Documentation []string
	EngineTips    []string
}

// The pattern table is matched in order by case-insensitive substring, first
// hit wins.
var knownPatterns = []Pattern{
	{
		Name:        "NullReferenceException",
		Description: "Attempting to access a member on a null object reference",
		Solutions: []string{
			"Check if object is null before accessing its members",
			"Initialize objects properly in Start() or Awake()",
			"Use null-conditional operators (?.) in C#",
		},
		Documentation: []string{
			"https://docs.unity3d.com/Manual/NullReferenceException.html",
		},
	},
	{
		Name:        "IndexOutOfRangeException",
		Description: "Trying to access an array element that doesn't exist",
		Solutions: []string{
			"Check array bounds before accessing elements",
			"Use array.Length to verify size",
			"Consider using List<T> instead of arrays for dynamic sizing",
		},
		Documentation: []string{
			"https://docs.microsoft.com/en-us/dotnet/api/system.indexoutofrangeexception",
		},
	},
	{
		Name:        "MissingReferenceException",
		Description: "Reference to a destroyed Unity object",
		Solutions: []string{
			"Check if object exists before using it",
			"Properly manage object lifecycle",
			"Use FindObjectOfType() to re-establish references",
		},
		Documentation: []string{
			"https://docs.unity3d.com/ScriptReference/MissingReferenceException.html",
		},
	},
}

const unknownAnalysis = "Unknown error type"

var fallbackSolutions = []string{
	"Check the error message for specific details",
	"Review recent code changes",
}

var engineTips = map[string][]string{
	"unity": {
		"Use Debug.Log() for runtime debugging",
		"Check the Console window for detailed error information",
		"Use Unity's built-in Profiler for performance issues",
	},
	"unreal": {
		"Use UE_LOG for debugging output",
		"Check the Output Log for detailed information",
		"Use Unreal's Blueprint debugger for visual scripting issues",
	},
	"godot": {
		"Use print() statements for debugging",
		"Check the Debugger panel for runtime information",
		"Use Godot's built-in profiler for performance analysis",
	},
}

var titleCaser = cases.Title(language.English)

// Assistant matches error reports against the pattern table. The clock is
// injectable so session ids are reproducible in tests.
type Assistant struct {
	now func() time.Time
}

// New returns an assistant on the wall clock.
func New() *Assistant {
	return &Assistant{now: time.Now}
}

// NewWithClock returns an assistant on the given clock.
func NewWithClock(now func() time.Time) *Assistant {
	return &Assistant{now: now}
}

// Analyze looks up the first known pattern contained in the error message and
// assembles the guidance for it. Unknown errors get the generic analysis and
// fallback solutions. The code context is accepted for API compatibility but
// does not influence matching.
func (a *Assistant) Analyze(errorMessage, codeContext, engine string) Result {
	normalizedEngine := NormalizeEngine(engine)
	result := Result{
		SessionID:  NewSessionID(errorMessage, a.now()),
		Engine:     normalizedEngine,
		Analysis:   unknownAnalysis,
		Solutions:  fallbackSolutions,
		EngineTips: engineTips[normalizedEngine],
	}

	lowered := strings.ToLower(errorMessage)
	for _, pattern := range knownPatterns {
		if strings.Contains(lowered, strings.ToLower(pattern.Name)) {
			result.Analysis = pattern.Description
			result.Solutions = pattern.Solutions
			result.Documentation = pattern.Documentation
			break
		}
	}
	return result
}

// NormalizeEngine maps free-form engine names to the supported set, falling
// back to unity.
func NormalizeEngine(engine string) string {
	normalized := strings.ToLower(strings.TrimSpace(engine))
	if _, ok := engineTips[normalized]; ok {
		return normalized
	}
	return "unity"
}

// EngineDisplayName renders an engine identifier for presentation.
func EngineDisplayName(engine string) string {
	return titleCaser.String(NormalizeEngine(engine))
}

// NewSessionID derives a 12-hex identifier from the error message and the
// current timestamp, like asset ids.
func NewSessionID(errorMessage string, now time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", errorMessage, now.UnixNano())))
	return hex.EncodeToString(sum[:])[:12]
}
