package hemogram

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashSeparator joins the identity fields before hashing. The separator and
// field order are part of the linkage scheme: changing either breaks the
// mapping between new and previously stored patient hashes.
const hashSeparator = "_"

// DerivePatientHash produces the stable one-way identifier that links exams
// from the same patient without storing identity. All three inputs must be
// present; otherwise the empty string is returned.
func DerivePatientHash(birthDate, municipalityCode, sex string) string {
	if birthDate == "" || municipalityCode == "" || sex == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(birthDate + hashSeparator + municipalityCode + hashSeparator + sex))
	return hex.EncodeToString(sum[:])
}
