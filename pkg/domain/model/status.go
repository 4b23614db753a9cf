package model

import "github.com/m-mizutani/goerr/v2"

// HandleStatusType is the outcome of handling one webhook payload
type HandleStatusType string

const (
	HandleStatusIgnored HandleStatusType = "ignored"
	HandleStatusSent    HandleStatusType = "sent"
	HandleStatusError   HandleStatusType = "error"
)

var ErrDeliveryFailure = goerr.New("delivery failure")

// HandleStatus is returned to the caller for every payload
type HandleStatus struct {
	Status  HandleStatusType `json:"status"`
	Message *Message         `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func NewIgnoredStatus() *HandleStatus {
	return &HandleStatus{Status: HandleStatusIgnored}
}

func NewSentStatus(msg *Message) *HandleStatus {
	return &HandleStatus{Status: HandleStatusSent, Message: msg}
}

func NewErrorStatus(err error) *HandleStatus {
	return &HandleStatus{Status: HandleStatusError, Error: err.Error()}
}
