package chat

import (
	"strings"

	"hourlyride/models"
)

// rule maps trigger keywords to a canned response. Rules are evaluated in
// order and the first match wins.
type rule struct {
	topic    string
	keywords []string
	reply    string
}

// rules is the immutable response table, built once at startup.
var rules = []rule{
	{
		topic:    "booking",
		keywords: []string{"book", "reserve", "reservation"},
		reply:    `I can help you book a ride! Click the "Book a ride" button below or visit our booking page. We offer hourly chauffeur service starting at $75/hour with a 2-hour minimum.`,
	},
	{
		topic:    "pricing",
		keywords: []string{"price", "cost", "rate", "how much"},
		reply:    "Our hourly rate is $75/hour with a 2-hour minimum booking. A 50% deposit is required upfront, and the remaining balance is due after service.",
	},
	{
		topic:    "hours",
		keywords: []string{"hour", "time", "schedule", "available"},
		reply:    "We are available 24/7! You can book a ride anytime that suits your schedule.",
	},
	{
		topic:    "services",
		keywords: []string{"service", "what do you offer"},
		reply:    "We offer: Hourly Chauffeur Service, Airport Transfers, Special Events, Business Travel, and Personal Use. All services are billed hourly.",
	},
	{
		topic:    "payment",
		keywords: []string{"payment", "pay", "deposit"},
		reply:    "We accept payment via credit card through our secure Stripe checkout. A 50% deposit is required when booking.",
	},
	{
		topic:    "vehicle",
		keywords: []string{"vehicle", "car", "sienna"},
		reply:    "We use a 2025 Black Toyota Sienna with premium leather interior, seating for up to 7 passengers, climate control, and complimentary bottled water.",
	},
	{
		topic:    "contact",
		keywords: []string{"contact", "phone", "email", "call"},
		reply:    "You can reach us at (929) 867-8846 or email info@atlantahourlyride.com. We're available 24/7!",
	},
	{
		topic:    "cancellation",
		keywords: []string{"cancel"},
		reply:    "Cancellations require 24 hours notice. Please contact us at (929) 867-8846 for cancellation assistance.",
	},
	{
		topic:    "greeting",
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! Welcome to Atlanta Luxury Chauffeur Service. How can I assist you today?",
	},
}

const defaultReply = "Thank you for your message! For immediate assistance, please call us at (929) 867-8846 or book directly through our website. How else can I help you today?"

// Respond returns the canned reply for a message via case-insensitive
// keyword matching.
func Respond(message string) models.ChatReply {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return models.ChatReply{Reply: r.reply, Topic: r.topic}
			}
		}
	}
	return models.ChatReply{Reply: defaultReply, Topic: "default"}
}
