package model

import "github.com/slack-go/slack"

// Message is the chat notification posted for an event
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewMarkdownMessage creates a message rendered as Slack mrkdwn
func NewMarkdownMessage(text string) *Message {
	return &Message{
		Type: slack.MarkdownType,
		Text: text,
	}
}
