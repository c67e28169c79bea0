package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// sentAtLayouts are the send-date formats found in MailChimp and MailerLite
// exports, tried in order.
var sentAtLayouts = []string{
	"Mon, Jan 2, 2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"2/1/2006 15:04",
	"Jan 2, 2006 03:04 pm",
	"Jan 2, 2006 03:04 PM",
	"Jan 2, 2006 3:04 pm",
	"Jan 2, 2006 3:04 PM",
	time.RFC3339,
}

const normalizedLayout = "2006-01-02 15:04"

var idStrip = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// ParseSentAt reads a send date in any of the export formats. Times carry
// no zone in the exports and are taken as UTC.
func ParseSentAt(value string) (time.Time, error) {
	clean := strings.TrimSpace(spaces.ReplaceAllString(value, " "))
	for _, layout := range sentAtLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised send date %q", value)
}

// normalizeSentAt renders a send date as "2006-01-02 15:04" so the same
// send hashes identically whichever export it came from. Unparseable input
// is returned with its whitespace collapsed.
func normalizeSentAt(value string) string {
	if value == "" {
		return ""
	}
	if t, err := ParseSentAt(value); err == nil {
		return t.Format(normalizedLayout)
	}
	return strings.TrimSpace(spaces.ReplaceAllString(value, " "))
}

// slug keeps letters, digits, underscores and hyphens. Input is NFC
// normalised first so a decomposed "é" and a precomposed one agree.
func slug(s string) string {
	s = strings.TrimSpace(idStrip.ReplaceAllString(norm.NFC.String(s), ""))
	return spaces.ReplaceAllString(s, "_")
}

// UniqueID derives a stable 12 character id from a campaign's title,
// subject, send date and platform. Re-importing the same send yields the
// same id.
func UniqueID(title, subject, sentAt, platform string) string {
	if title == "" && subject == "" && sentAt == "" {
		return hash12(platform + "_unknown")
	}
	composite := strings.ToLower(fmt.Sprintf("%s_%s_%s_%s",
		slug(title), slug(subject), normalizeSentAt(sentAt), platform))
	return hash12(composite)
}

// ReadableID prefixes a campaign id with up to 30 characters of the
// campaign name, e.g. "summer_sale_campaign_3f2a9c0d1e4b".
func ReadableID(title, subject, id string) string {
	name := title
	if name == "" {
		name = subject
	}
	prefix := []rune(strings.ToLower(slug(name)))
	if len(prefix) == 0 {
		prefix = []rune("untitled")
	}
	if len(prefix) > 30 {
		prefix = prefix[:30]
	}
	return string(prefix) + "_" + id
}

func hash12(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}
