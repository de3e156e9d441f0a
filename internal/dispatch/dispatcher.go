// Package dispatch turns composed orders into outbound channel actions. It
// only builds the link or clipboard payload; the caller performs the actual
// navigation, so nothing here does network I/O.
package dispatch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/veloura/storefront/internal/model"
	"github.com/veloura/storefront/internal/order"
)

// Channel is an outbound delivery channel.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// ParseChannel maps a request parameter to a Channel.
func ParseChannel(raw string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "whatsapp":
		return ChannelWhatsApp, nil
	case "email":
		return ChannelEmail, nil
	default:
		return "", fmt.Errorf("unknown delivery channel: %q", raw)
	}
}

// EmailStrategy selects how the email channel is delivered. It is fixed per
// deployment: mailto when the environment guarantees a registered mail
// handler, clipboard (with a webmail-compose fallback link) when it does not.
type EmailStrategy string

const (
	EmailMailto    EmailStrategy = "mailto"
	EmailClipboard EmailStrategy = "clipboard"
)

// ChannelAction is the data the UI layer acts on. WhatsApp and mailto
// deliveries carry a URL to open; the clipboard strategy carries the message
// to copy plus a webmail-compose link as fallback.
type ChannelAction struct {
	Channel          Channel `json:"channel"`
	URL              string  `json:"url,omitempty"`
	ClipboardPayload string  `json:"clipboard_payload,omitempty"`
	MailtoFallback   string  `json:"mailto_fallback,omitempty"`
}

// Dispatcher builds channel actions against fixed deployment destinations.
type Dispatcher struct {
	whatsappPhone string
	emailAddress  string
	strategy      EmailStrategy
	webmailHost   string
}

// New creates a Dispatcher. The WhatsApp destination keeps digits only, per
// the wa.me link format.
func New(whatsappPhone, emailAddress string, strategy EmailStrategy, webmailHost string) *Dispatcher {
	return &Dispatcher{
		whatsappPhone: digitsOnly(whatsappPhone),
		emailAddress:  emailAddress,
		strategy:      strategy,
		webmailHost:   webmailHost,
	}
}

// BuildChannelAction renders the order message and wraps it in the channel's
// outbound format. It is pure construction; building the action never sends
// anything.
func (d *Dispatcher) BuildChannelAction(o model.OrderRecord, channel Channel) (ChannelAction, error) {
	message := order.FormatMessage(o)

	switch channel {
	case ChannelWhatsApp:
		return ChannelAction{
			Channel: ChannelWhatsApp,
			URL:     fmt.Sprintf("https://wa.me/%s?text=%s", d.whatsappPhone, encode(message)),
		}, nil

	case ChannelEmail:
		subject := order.Subject(o)
		if d.strategy == EmailClipboard {
			return ChannelAction{
				Channel:          ChannelEmail,
				ClipboardPayload: message,
				MailtoFallback: fmt.Sprintf("https://%s/compose?to=%s&su=%s&body=%s",
					d.webmailHost, d.emailAddress, encode(subject), encode(message)),
			}, nil
		}
		return ChannelAction{
			Channel: ChannelEmail,
			URL: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
				d.emailAddress, encode(subject), encode(message)),
		}, nil

	default:
		return ChannelAction{}, fmt.Errorf("unknown delivery channel: %q", channel)
	}
}

// encode percent-encodes a query value the way encodeURIComponent does:
// spaces become %20, not +, because the text lands in links consumed by
// WhatsApp and mail clients.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
