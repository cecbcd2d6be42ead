package hemogram

import "regexp"

// Plausibility bounds for hemogram measurements. Open intervals: the bound
// itself is rejected. Units: g/dL for hemoglobin, x10^9/L for leukocytes.
const (
	hemoglobinMax = 30
	plateletsMax  = 2_000_000
	leukocytesMax = 1000
	ageMax        = 120
	sampleIDMin   = 5
)

var municipalityCodeRE = regexp.MustCompile(`^\d{7}$`)

// ValidAge reports whether age is a plausible patient age.
func ValidAge(age int) bool {
	return age >= 0 && age <= ageMax
}

// ValidHemoglobin accepts an absent value or one strictly inside (0, 30).
func ValidHemoglobin(v *float64) bool {
	return v == nil || (*v > 0 && *v < hemoglobinMax)
}

// ValidPlatelets accepts an absent value or one strictly inside (0, 2,000,000).
func ValidPlatelets(v *int64) bool {
	return v == nil || (*v > 0 && *v < plateletsMax)
}

// ValidLeukocytes accepts an absent value or one strictly inside (0, 1000).
func ValidLeukocytes(v *float64) bool {
	return v == nil || (*v > 0 && *v < leukocytesMax)
}

// ValidMunicipalityCode requires exactly seven digits (IBGE municipality code).
func ValidMunicipalityCode(code string) bool {
	return municipalityCodeRE.MatchString(code)
}

// ValidSampleID requires a present identifier of at least five characters.
func ValidSampleID(id string) bool {
	return len(id) >= sampleIDMin
}
