package model

// Idea is one generated content suggestion.
type Idea struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Confidence int    `json:"confidence"`
}

// IdeasRequest is the API request body for content generation.
type IdeasRequest struct {
	Action      string `json:"action"`
	Topic       string `json:"topic"`
	ChannelName string `json:"channelName"`
	Title       string `json:"title"`
	Tone        string `json:"tone"`
}
