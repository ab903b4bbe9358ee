package services

import (
	"regexp"
	"strings"
)

// BannedWords are rejected as whole words, case-insensitively.
var BannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"ass", "asshole", "bastard", "bitch", "cunt",
	"retard", "retarded",
	"porn", "porno", "nude", "nudes",
	"spam", "scam", "scammer", "phishing", "malware",
}

// Rejection reasons returned by FilterContent.
const (
	ReasonLanguage    = "inappropriate_language"
	ReasonURL         = "url_not_allowed"
	ReasonContactInfo = "contact_info_not_allowed"
	ReasonSpam        = "spam_detected"
	ReasonCaps        = "excessive_caps"
)

var rejectionMessages = map[string]string{
	ReasonLanguage:    "Your review contains inappropriate language.",
	ReasonURL:         "Links are not allowed in reviews.",
	ReasonContactInfo: "Contact information is not allowed in reviews.",
	ReasonSpam:        "Your review appears to be spam.",
	ReasonCaps:        "Please avoid using excessive capital letters.",
}

// ModerationService screens free text such as review comments. It is safe for concurrent use.
type ModerationService struct {
	bannedWords  *regexp.Regexp
	urlPattern   *regexp.Regexp
	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
	repeated     *regexp.Regexp
	allCaps      *regexp.Regexp
}

func NewModerationService() *ModerationService {
	quoted := make([]string, 0, len(BannedWords))
	for _, w := range BannedWords {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}

	// RE2 has no backreferences, so runs are spelled out per character.
	runs := make([]string, 0, 29)
	for c := 'a'; c <= 'z'; c++ {
		runs = append(runs, string(c)+"{5,}")
	}
	runs = append(runs, `!{5,}`, `\?{5,}`, `\.{5,}`)

	return &ModerationService{
		bannedWords:  regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`),
		urlPattern:   regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`),
		emailPattern: regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`),
		phonePattern: regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		repeated:     regexp.MustCompile(`(?i)(` + strings.Join(runs, "|") + `)`),
		allCaps:      regexp.MustCompile(`\b[A-Z]{5,}\b`),
	}
}

// FilterContent reports whether text is acceptable and, if not, why.
func (ms *ModerationService) FilterContent(text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return true, ""
	}
	switch {
	case ms.bannedWords.MatchString(text):
		return false, ReasonLanguage
	case ms.urlPattern.MatchString(text):
		return false, ReasonURL
	case ms.emailPattern.MatchString(text), ms.phonePattern.MatchString(text):
		return false, ReasonContactInfo
	case ms.repeated.MatchString(text):
		return false, ReasonSpam
	case len(ms.allCaps.FindAllString(text, -1)) > 2:
		return false, ReasonCaps
	}
	return true, ""
}

func (ms *ModerationService) RejectionMessage(reason string) string {
	if msg, ok := rejectionMessages[reason]; ok {
		return msg
	}
	return "Your review does not meet our content guidelines."
}
