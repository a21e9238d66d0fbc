// Package extract implements the extraction stage: pulling structured
// diagnostic entities out of relevant chunks with the reasoning model.
package extract

import (
	"regexp"
	"strings"
)

// dtcCodeRE matches an OBD-II trouble code: one system letter and four
// hex digits, e.g. P0300 or U0100.
var dtcCodeRE = regexp.MustCompile(`^[PBCU][0-9A-F]{4}$`)

// extraction is the JSON contract the model must satisfy. Unknown fields
// are ignored; missing arrays are simply empty.
type extraction struct {
	DTCs     []dtcItem     `json:"dtc_codes"`
	Causes   []causeItem   `json:"causes"`
	Steps    []stepItem    `json:"diagnostic_steps"`
	Sensors  []sensorItem  `json:"sensors"`
	TSBs     []tsbItem     `json:"tsb_references"`
	Vehicles []vehicleItem `json:"vehicles_mentioned"`
	Category string        `json:"document_category"`
}

type dtcItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
}

type causeItem struct {
	DTCCode     string `json:"dtc_code"`
	Description string `json:"description"`
	Likelihood  string `json:"likelihood"`
}

type stepItem struct {
	DTCCode        string `json:"dtc_code"`
	Order          int    `json:"step_order"`
	Description    string `json:"description"`
	ToolsRequired  string `json:"tools_required"`
	ExpectedValues string `json:"expected_values"`
}

type sensorItem struct {
	Name            string   `json:"name"`
	SensorType      string   `json:"sensor_type"`
	TypicalRange    string   `json:"typical_range"`
	Unit            string   `json:"unit"`
	RelatedDTCCodes []string `json:"related_dtc_codes"`
}

type tsbItem struct {
	TSBNumber       string   `json:"tsb_number"`
	Title           string   `json:"title"`
	AffectedModels  string   `json:"affected_models"`
	RelatedDTCCodes []string `json:"related_dtc_codes"`
	Summary         string   `json:"summary"`
}

type vehicleItem struct {
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	YearStart       int      `json:"year_start"`
	YearEnd         int      `json:"year_end"`
	Engine          string   `json:"engine"`
	Transmission    string   `json:"transmission"`
	RelatedDTCCodes []string `json:"related_dtc_codes"`
}

// CanonicalDTCCode normalizes a trouble code to uppercase and validates
// it. Returns ok=false for anything that is not a well-formed code.
func CanonicalDTCCode(code string) (string, bool) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	if !dtcCodeRE.MatchString(canonical) {
		return "", false
	}
	return canonical, true
}

// NormalizeLikelihood lowers a likelihood label onto the closed set used
// by cause scoring. Anything else becomes empty (neutral).
func NormalizeLikelihood(likelihood string) string {
	switch strings.ToLower(strings.TrimSpace(likelihood)) {
	case "high":
		return "high"
	case "medium", "moderate":
		return "medium"
	case "low":
		return "low"
	default:
		return ""
	}
}

// NormalizeSeverity lowers a severity label onto the closed set stored on
// staged DTCs. Anything else becomes empty.
func NormalizeSeverity(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "critical", "severe":
		return "critical"
	case "moderate", "medium":
		return "moderate"
	case "minor", "low":
		return "minor"
	case "informational", "info":
		return "informational"
	default:
		return ""
	}
}

// documentCategories is the closed set of per-chunk category votes.
var documentCategories = map[string]bool{
	"repair_procedure":  true,
	"diagnostic_guide":  true,
	"dtc_reference":     true,
	"tsb_bulletin":      true,
	"wiring_diagram":    true,
	"parts_catalog":     true,
	"forum_discussion":  true,
	"owners_manual":     true,
	"recall_notice":     true,
	"general_reference": true,
}

// NormalizeCategory validates a document-category vote against the
// closed set. Returns ok=false for labels outside it.
func NormalizeCategory(category string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(category))
	if !documentCategories[c] {
		return "", false
	}
	return c, true
}

// canonicalCodes canonicalizes a code list, dropping malformed entries
// and duplicates while preserving order.
func canonicalCodes(codes []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, code := range codes {
		canonical, ok := CanonicalDTCCode(code)
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}
