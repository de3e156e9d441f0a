// Package chat is the scripted FAQ responder behind the storefront chat
// widget. Intent classification is deterministic keyword matching; only the
// phrasing pick within an intent is randomized, and that randomness sits
// behind an injectable source.
package chat

import (
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/veloura/storefront/internal/prefs"
)

// Intent identifies which canned-response table a message maps to.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentSizing   Intent = "sizing"
	IntentShipping Intent = "shipping"
	IntentReturns  Intent = "returns"
	IntentPayment  Intent = "payment"
	IntentHours    Intent = "hours"
	IntentFallback Intent = "fallback"
)

// Classification order matters: the first intent with a keyword hit wins.
// Payment sits before shipping so "cash on delivery" lands on payment.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentGreeting, []string{"hello", "hi", "hey", "salam", "assalam"}},
	{IntentSizing, []string{"size", "sizes", "sizing", "fit", "measurement", "small", "medium", "large"}},
	{IntentReturns, []string{"return", "exchange", "refund", "replace"}},
	{IntentPayment, []string{"pay", "payment", "cod", "cash", "card", "bank"}},
	{IntentShipping, []string{"ship", "shipping", "deliver", "delivery", "courier", "track", "how long"}},
	{IntentHours, []string{"open", "hours", "timing", "when", "available"}},
}

var responseTemplates = map[Intent][]string{
	IntentGreeting: {
		"Hi there! Welcome to Veloura. How can I help you today?",
		"Hello! Looking for something in particular? I'm happy to help.",
	},
	IntentSizing: {
		"Our jackets run true to size. Check the size guide on each product page, and when in doubt go one size up.",
		"Sizes S through XXL are listed on every product. Measurements are in the size guide on the product page.",
	},
	IntentShipping: {
		"We deliver nationwide in 3-5 working days. You'll get a tracking number once your order ships.",
		"Orders ship within 48 hours and arrive in 3-5 working days anywhere in the country.",
	},
	IntentReturns: {
		"Unworn items can be exchanged within 7 days of delivery. Message us on WhatsApp to arrange it.",
		"We offer 7-day exchanges on unworn items with tags attached.",
	},
	IntentPayment: {
		"We accept cash on delivery and bank transfer. Payment details come with your order confirmation.",
		"Cash on delivery is available everywhere we ship. Bank transfer works too.",
	},
	IntentHours: {
		"We reply on WhatsApp every day from 10am to 10pm.",
		"The store is online around the clock; our team answers messages between 10am and 10pm.",
	},
	IntentFallback: {
		"I'm not sure about that one. Drop us a message on WhatsApp and a real person will get back to you.",
		"Good question! Our team on WhatsApp can answer that better than I can.",
	},
}

// Classify maps a customer message to an intent. Same message, same intent,
// always. Single keywords match whole words only (so "hi" does not fire
// inside "ship"); multiword phrases match as substrings.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	words := tokenize(lower)
	for _, group := range intentKeywords {
		for _, kw := range group.keywords {
			if strings.ContainsRune(kw, ' ') {
				if strings.Contains(lower, kw) {
					return group.intent
				}
			} else if words[kw] {
				return group.intent
			}
		}
	}
	return IntentFallback
}

func tokenize(s string) map[string]bool {
	set := make(map[string]bool)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range fields {
		set[w] = true
	}
	return set
}

// Reply is a chat answer plus the typing delay the UI should simulate before
// showing it.
type Reply struct {
	Intent      Intent
	Text        string
	TypingDelay time.Duration
}

// Responder answers chat messages and keeps the conversation log in the
// preference store.
type Responder struct {
	mu    sync.Mutex
	rng   *rand.Rand
	store *prefs.Store
	delay time.Duration
}

// NewResponder creates a Responder. The rand source drives only the phrasing
// pick, so tests seed it for deterministic output. The store may be nil when
// no conversation log should be kept.
func NewResponder(source rand.Source, store *prefs.Store, typingDelay time.Duration) *Responder {
	return &Responder{
		rng:   rand.New(source),
		store: store,
		delay: typingDelay,
	}
}

// Reply classifies the message, picks a phrasing for the intent, and appends
// both sides of the exchange to the conversation log.
func (r *Responder) Reply(message string) (Reply, error) {
	intent := Classify(message)

	r.mu.Lock()
	templates := responseTemplates[intent]
	text := templates[r.rng.Intn(len(templates))]
	r.mu.Unlock()

	if r.store != nil {
		err := r.store.AppendChatLog(
			prefs.LogEntry{Sender: "customer", Text: message},
			prefs.LogEntry{Sender: "bot", Text: text},
		)
		if err != nil {
			return Reply{}, err
		}
	}

	return Reply{Intent: intent, Text: text, TypingDelay: r.delay}, nil
}

// DeliverAfter hands the reply to deliver once the typing delay elapses on
// the given scheduler. The returned cancel stops a delivery that has not run
// yet.
func (r *Responder) DeliverAfter(scheduler Scheduler, reply Reply, deliver func(Reply)) CancelFunc {
	return scheduler.Schedule(reply.TypingDelay, func() { deliver(reply) })
}
