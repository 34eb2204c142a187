package models

// EmptyMessagePrompt is returned for blank messages without running the matcher.
const EmptyMessagePrompt = "Please type a message so I can help you."

// Reply is the outcome of handling one user message.
type Reply struct {
	Response   string  `json:"response"`
	Intent     string  `json:"intent,omitempty"`
	Score      float64 `json:"score"`
	Matched    bool    `json:"matched"`
	Normalized string  `json:"normalized"`
	// Prompted is true when the message was blank and no classification ran.
	Prompted bool `json:"prompted"`
}

// Match is the similarity of a message to one trained trigger phrase.
type Match struct {
	Intent  string  `json:"intent"`
	Phrase  string  `json:"phrase"`
	Row     int     `json:"row"`
	Score   float64 `json:"score"`
	Matched bool    `json:"matched"`
}

// ChatBot is the core request-in/response-out operation. Implementations are
// immutable after construction and safe for concurrent use.
type ChatBot interface {
	// Handle returns the response for message.
	Handle(message string) string
	// Reply returns the response for message along with classification details.
	Reply(message string) Reply
	// Rank returns the n best scoring trained phrases for message.
	Rank(message string, n int) (normalized string, matches []Match)
	// Corpus returns the intents the bot was trained on.
	Corpus() *Corpus
	// DefaultResponses returns the fallback response set.
	DefaultResponses() []string
	// Suggestions returns quick options a client may show before the first message.
	Suggestions() []string
	// Threshold returns the exclusive score a best match must exceed.
	Threshold() float64
}
