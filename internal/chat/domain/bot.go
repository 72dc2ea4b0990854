// Package domain is the keyword assistant: it maps a visitor's message to an
// intent and answers with one of that intent's canned replies.
package domain

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Intent is what the assistant believes a message is about
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentServices      Intent = "services"
	IntentBooking       Intent = "booking"
	IntentLocations     Intent = "locations"
	IntentSamagri       Intent = "samagri"
	IntentDarshan       Intent = "darshan"
	IntentPanchang      Intent = "panchang"
	IntentFestivals     Intent = "festivals"
	IntentUrgentBooking Intent = "urgent_booking"
	IntentFallback      Intent = "fallback"
)

var replies = map[Intent][]string{
	IntentGreeting: {
		"Namaste! How can I assist you with your puja or pandit booking today?",
		"Welcome to BookMyPanditJi! I'm here to help you find the perfect pandit for your ceremony.",
		"Namaste! Looking for religious services or a pandit? I can help!",
	},
	IntentServices: {
		"We offer various services including Griha Pravesh, Satyanarayan Puja, Wedding Ceremonies, Baby Naming Ceremonies, and many more. Would you like to know details about any specific service?",
		"Our pandits can perform many ceremonies such as Griha Pravesh, Vastu Puja, Satyanarayan Puja, Wedding rituals, and more. Which one are you interested in?",
	},
	IntentBooking: {
		"You can book a pandit by selecting the service type, location, and preferred date. Would you like me to guide you through the booking process?",
		"To book a pandit, you can use our normal advance booking or premium urgent booking options. Would you like to proceed with booking now?",
	},
	IntentLocations: {
		"Our pandits provide services across major cities including Delhi, Mumbai, Bangalore, and many more. Where do you need the service?",
		"We have verified pandits available in most major cities across India. Where are you located?",
	},
	IntentSamagri: {
		"Yes, we provide puja samagri (materials) for all ceremonies. You can add them to your cart during the booking process. Would you like to only order samagri without booking a pandit?",
		"We can arrange all required puja samagri for your ceremony. Would you like to know more about our samagri packages?",
	},
	IntentDarshan: {
		"Yes, we offer live darshan services from major temples across India. Would you like to check out the live darshan feature?",
		"Our platform provides live darshan from various important temples. You can access it from our Live Darshan section.",
	},
	IntentPanchang: {
		"Today's Panchang shows it's an auspicious day for starting new ventures. Would you like to book a puja accordingly?",
		"According to today's Panchang, it's a good day for family gatherings and ceremonies. Would you like to see available pandits?",
	},
	IntentFestivals: {
		"The upcoming festival is Diwali on November 12th. Would you like to book a pandit for Lakshmi Puja?",
		"Navratri is coming up next month. We offer special puja packages for all nine days. Would you like more information?",
	},
	IntentUrgentBooking: {
		"Our premium booking service allows you to book a pandit on short notice, even within a few hours. Would you like to proceed with urgent booking?",
		"We understand emergency situations. Our premium service can arrange a qualified pandit within hours. Would you like to make an urgent booking?",
	},
	IntentFallback: {
		"I'm not sure I understand. Could you please rephrase your question?",
		"I apologize, but I don't have enough information about that. Could you provide more details?",
		"Let me connect you with our customer support team for better assistance. You can call us at +91-XXXXXXXXXX.",
	},
}

// Suggestions are the quick prompts offered before the first question
var Suggestions = []string{
	"How to book a pandit?",
	"What services do you offer?",
	"Do you provide puja samagri?",
	"Live temple darshan",
	"Urgent puja booking",
	"Today's panchang details",
	"Upcoming festivals",
}

type rule struct {
	intent   Intent
	keywords []string
}

// rules are checked in order; the first rule with a matching keyword wins
var rules = []rule{
	{IntentServices, []string{"service", "puja", "ceremony"}},
	{IntentLocations, []string{"location", "city", "where"}},
	{IntentSamagri, []string{"samagri", "material", "items"}},
	{IntentDarshan, []string{"darshan", "temple", "live"}},
	{IntentPanchang, []string{"panchang", "muhurat", "today", "auspicious"}},
	{IntentFestivals, []string{"festival", "upcoming", "celebration", "diwali", "navratri"}},
	// loose phrasing
	{IntentBooking, []string{"need", "want", "looking", "search"}},
	{IntentServices, []string{"perform", "conduct", "do", "arrange"}},
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Classify finds the intent of text by case-insensitive substring match
func Classify(text string) Intent {
	s := strings.ToLower(text)
	if containsAny(s, []string{"book", "reserve"}) {
		if containsAny(s, []string{"urgent", "premium", "emergency"}) {
			return IntentUrgentBooking
		}
		return IntentBooking
	}
	for _, r := range rules {
		if containsAny(s, r.keywords) {
			return r.intent
		}
	}
	return IntentFallback
}

// Message is one line of a chat transcript
type Message struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	Intent    Intent    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Bot picks canned replies
type Bot struct {
	pick func(n int) int
}

// NewBot returns a bot choosing replies at random
func NewBot() *Bot {
	return &Bot{pick: rand.IntN}
}

// NewBotWithPicker returns a bot whose reply choice is made by pick, which
// must return a value in [0, n)
func NewBotWithPicker(pick func(n int) int) *Bot {
	return &Bot{pick: pick}
}

// Reply returns one of the replies for intent
func (b *Bot) Reply(intent Intent) string {
	options, ok := replies[intent]
	if !ok {
		options = replies[IntentFallback]
	}
	return options[b.pick(len(options))]
}

// Replies lists every canned reply for intent
func Replies(intent Intent) []string {
	return append([]string(nil), replies[intent]...)
}
