// Package whatsapp builds wa.me click-to-chat links for the contact endpoint.
package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Link returns a wa.me deep link for an E.164 phone number. wa.me rejects
// the leading "+", so it is stripped along with any stray plus signs. An
// optional prefilled message is percent-encoded into the text parameter.
func Link(phoneE164, text string) string {
	link := baseURL + strings.ReplaceAll(phoneE164, "+", "")
	if text == "" {
		return link
	}
	q := url.Values{}
	q.Set("text", text)
	return link + "?" + q.Encode()
}
