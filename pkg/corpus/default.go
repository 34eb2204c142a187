package corpus

import "github.com/nmchat/nmbot/pkg/models"

// DefaultIntents is the compiled-in knowledge base, in training order.
func DefaultIntents() []models.Intent {
	return []models.Intent{
		{
			ID:       "greetings",
			Patterns: []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon"},
			Responses: []string{
				"Hello! How can I assist you today?",
				"Hi there! What can I do for you?",
				"Welcome! How may I help you?",
			},
		},
		{
			ID:       "goodbye",
			Patterns: []string{"bye", "goodbye", "see you", "later", "farewell"},
			Responses: []string{
				"Goodbye! Have a great day!",
				"Thank you for chatting with us. Goodbye!",
				"See you later! Don't hesitate to reach out if you have more questions.",
			},
		},
		{
			ID:       "help",
			Patterns: []string{"help", "support", "assistance", "can you help"},
			Responses: []string{
				"I can help with account issues, product information, order status, and general questions.",
				"I'm here to assist with your questions about our products and services.",
				"How can I help you today? I can provide information about orders, products, and more.",
			},
		},
		{
			ID:       "account",
			Patterns: []string{"account", "login", "password", "sign in", "register", "profile"},
			Responses: []string{
				"For account-related issues, please visit the 'My Account' section on our website.",
				"You can reset your password by clicking 'Forgot Password' on the login page.",
				"Account settings can be changed in the 'Profile' section of your account.",
			},
		},
		{
			ID:       "order",
			Patterns: []string{"order", "track", "shipping", "delivery", "status", "purchase"},
			Responses: []string{
				"You can check your order status in the 'My Orders' section of your account.",
				"For order inquiries, please have your order number ready.",
				"Shipping times vary by location. You'll receive a tracking email once your order ships.",
			},
		},
		{
			ID:       "product",
			Patterns: []string{"product", "item", "spec", "feature", "catalog", "inventory"},
			Responses: []string{
				"Our products come with a 30-day money-back guarantee.",
				"Product specifications can be found on each product's detail page.",
				"For product availability, please check the product page or contact our sales team.",
			},
		},
		{
			ID:       "payment",
			Patterns: []string{"payment", "pay", "credit card", "bill", "invoice", "refund"},
			Responses: []string{
				"We accept Visa, MasterCard, American Express, and PayPal.",
				"Payment issues can often be resolved by trying a different payment method.",
				"For payment-related questions, please contact our billing department.",
			},
		},
		{
			ID:       "thanks",
			Patterns: []string{"thank", "thanks", "appreciate", "grateful"},
			Responses: []string{
				"You're welcome! Is there anything else I can help with?",
				"Happy to help! Let me know if you have other questions.",
				"My pleasure! Don't hesitate to ask if you need anything else.",
			},
		},
	}
}

// DefaultResponses is the compiled-in fallback response set.
func DefaultResponses() []string {
	return []string{
		"I'm not sure I understand. Could you rephrase that?",
		"I don't have information on that topic. Could you ask something else?",
		"I'm still learning. Could you try asking a different question?",
		"I didn't quite get that. Can you provide more details?",
		"That's an interesting question. Let me connect you with a human agent who can help.",
	}
}

// DefaultSuggestions are quick options a client may offer before the first message.
func DefaultSuggestions() []string {
	return []string{
		"Account issues",
		"Order status",
		"Product information",
		"Payment questions",
		"Talk to a human",
	}
}
