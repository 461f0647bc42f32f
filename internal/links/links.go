// Package links builds the outbound deep links used for purchases and
// complaints, plus a few URL helpers shared by the handlers.
package links

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultWhatsAppNumber = "6208972190700"
	DefaultInstagramURL   = "https://www.instagram.com/irsyad.kgr/"
)

var (
	youtubeID    = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)
	whitespace   = regexp.MustCompile(`\s+`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
)

// Rupiah formats an amount with Indonesian thousands separators, e.g. "Rp 80.000".
func Rupiah(amount int64) string {
	return "Rp " + message.NewPrinter(language.Indonesian).Sprintf("%d", amount)
}

// PurchaseMessage is the pre-filled chat message for buying a game.
func PurchaseMessage(lang, title string, finalPrice int64, free bool) string {
	if lang == "en" {
		price := Rupiah(finalPrice)
		if free {
			price = "FREE"
		}
		return fmt.Sprintf("Hi! I'm interested in purchasing \"%s\" for %s. Can you help me with the purchase process?", title, price)
	}
	price := Rupiah(finalPrice)
	if free {
		price = "GRATIS"
	}
	return fmt.Sprintf("Halo! Saya tertarik membeli \"%s\" seharga %s. Bisakah Anda membantu proses pembeliannya?", title, price)
}

// ComplaintMessage is the pre-filled chat message for the complaint button.
func ComplaintMessage(lang string) string {
	if lang == "en" {
		return "Hello KGR GameStore! I would like to report a complaint/issue regarding your service or my order. Please help me resolve it. Thank you."
	}
	return "Halo KGR GameStore! Saya ingin menyampaikan keluhan/masalah terkait layanan atau pesanan saya. Mohon bantuan untuk menyelesaikan masalah ini. Terima kasih."
}

// WhatsApp returns a wa.me link that opens a chat with text pre-filled.
func WhatsApp(number, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + number + "?text=" + escaped
}

// Instagram returns the profile URL, falling back to the store's account.
func Instagram(profileURL string) string {
	if strings.TrimSpace(profileURL) == "" {
		return DefaultInstagramURL
	}
	return profileURL
}

// YouTubeID extracts the 11 character video id from a watch, short or embed URL.
func YouTubeID(raw string) (string, bool) {
	m := youtubeID.FindStringSubmatch(raw)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return m[2], true
}

// YouTubeEmbedURL converts a YouTube URL into its embeddable form.
// URLs that carry no recognisable video id are returned unchanged.
func YouTubeEmbedURL(raw string) string {
	id, ok := YouTubeID(raw)
	if !ok {
		return raw
	}
	return "https://www.youtube.com/embed/" + id
}

// Slugify derives a URL slug from a post title.
func Slugify(title string) string {
	s := whitespace.ReplaceAllString(strings.ToLower(title), "-")
	return nonSlugChars.ReplaceAllString(s, "")
}
