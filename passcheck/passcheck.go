// Package passcheck analyzes password strength: length and character-class
// checks, weak-pattern detection, a common-password list, and an overall
// 0-100 score. It is pure text analysis with no I/O and no shared state.
package passcheck

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Strength labels assigned from the score.
const (
	StrengthWeak     = "WEAK"
	StrengthModerate = "MODERATE"
	StrengthGood     = "GOOD"
	StrengthStrong   = "STRONG"
)

var commonPasswords = map[string]struct{}{
	"password": {}, "123456": {}, "12345678": {}, "qwerty": {}, "abc123": {},
	"monkey": {}, "1234567": {}, "letmein": {}, "trustno1": {}, "dragon": {},
	"baseball": {}, "iloveyou": {}, "master": {}, "sunshine": {}, "ashley": {},
	"football": {}, "shadow": {}, "passw0rd": {}, "admin": {}, "welcome": {},
}

var (
	upperRe      = regexp.MustCompile(`[A-Z]`)
	lowerRe      = regexp.MustCompile(`[a-z]`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	specialRe    = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	seqDigitsRe  = regexp.MustCompile(`012|123|234|345|456|567|678|789`)
	seqLettersRe = regexp.MustCompile(`abc|bcd|cde|def|efg`)
	lettersOnly  = regexp.MustCompile(`^[a-zA-Z]+$`)
	digitsOnly   = regexp.MustCompile(`^[0-9]+$`)
)

// Complexity records which character classes a password uses.
type Complexity struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Special   bool `json:"special"`
}

// Hashes holds hex digests of the password, for lookup against breach lists.
type Hashes struct {
	MD5    string `json:"md5"`
	SHA256 string `json:"sha256"`
}

// Analysis is the full result of analyzing one password.
type Analysis struct {
	Length     int        `json:"password_length"`
	Score      int        `json:"score"`
	Strength   string     `json:"strength"`
	Complexity Complexity `json:"complexity"`
	Common     bool       `json:"is_common"`
	Warnings   []string   `json:"warnings"`
	Hashes     Hashes     `json:"hashes"`
}

// CheckComplexity reports which character classes password contains.
func CheckComplexity(password string) Complexity {
	return Complexity{
		Uppercase: upperRe.MatchString(password),
		Lowercase: lowerRe.MatchString(password),
		Numbers:   digitRe.MatchString(password),
		Special:   specialRe.MatchString(password),
	}
}

// IsCommon reports whether password is on the common weak-password list.
func IsCommon(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}

// CheckPatterns returns a warning for each weak pattern found in password.
func CheckPatterns(password string) []string {
	warnings := []string{}
	if hasRepeatedRun(password, 3) {
		warnings = append(warnings, "Contains repeated characters")
	}
	if seqDigitsRe.MatchString(password) {
		warnings = append(warnings, "Contains sequential numbers")
	}
	if seqLettersRe.MatchString(strings.ToLower(password)) {
		warnings = append(warnings, "Contains sequential letters")
	}
	if lettersOnly.MatchString(password) {
		warnings = append(warnings, "Contains only letters")
	}
	if digitsOnly.MatchString(password) {
		warnings = append(warnings, "Contains only numbers")
	}
	return warnings
}

// hasRepeatedRun reports whether password contains n or more identical
// consecutive bytes. Done by hand: RE2 has no backreferences.
func hasRepeatedRun(password string, n int) bool {
	run := 1
	for i := 1; i < len(password); i++ {
		if password[i] == password[i-1] {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// Score computes the overall strength score, clamped to 0-100: up to 40
// points for length, 10 per character class, minus 5 per pattern warning and
// 30 for a common password.
func Score(password string) int {
	score := len(password) * 3
	if score > 40 {
		score = 40
	}

	c := CheckComplexity(password)
	for _, present := range []bool{c.Uppercase, c.Lowercase, c.Numbers, c.Special} {
		if present {
			score += 10
		}
	}

	score -= 5 * len(CheckPatterns(password))
	if IsCommon(password) {
		score -= 30
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Analyze performs the complete analysis of one password.
func Analyze(password string) Analysis {
	score := Score(password)

	strength := StrengthWeak
	switch {
	case score >= 80:
		strength = StrengthStrong
	case score >= 60:
		strength = StrengthGood
	case score >= 40:
		strength = StrengthModerate
	}

	md5Sum := md5.Sum([]byte(password))
	sha256Sum := sha256.Sum256([]byte(password))

	return Analysis{
		Length:     len(password),
		Score:      score,
		Strength:   strength,
		Complexity: CheckComplexity(password),
		Common:     IsCommon(password),
		Warnings:   CheckPatterns(password),
		Hashes: Hashes{
			MD5:    hex.EncodeToString(md5Sum[:]),
			SHA256: hex.EncodeToString(sha256Sum[:]),
		},
	}
}
