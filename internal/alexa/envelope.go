// Package alexa holds the JSON envelope exchanged with the voice platform.
package alexa

import (
	"errors"
	"strings"
)

const (
	LaunchRequest       = "LaunchRequest"
	IntentRequest       = "IntentRequest"
	SessionEndedRequest = "SessionEndedRequest"
)

var ErrMalformed = errors.New("malformed request envelope")

type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Intent    Intent `json:"intent,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Validate checks the fields every turn relies on. Request types the skill
// does not handle are well formed; the dispatcher answers them.
func (e *RequestEnvelope) Validate() error {
	switch e.Request.Type {
	case "":
		return errors.Join(ErrMalformed, errors.New("missing request type"))
	case IntentRequest:
		if e.Request.Intent.Name == "" {
			return errors.Join(ErrMalformed, errors.New("intent request without intent name"))
		}
	}
	return nil
}

// SlotValue returns the trimmed value of the named slot, or false when the
// slot is absent or empty.
func (e *RequestEnvelope) SlotValue(name string) (string, bool) {
	slot, ok := e.Request.Intent.Slots[name]
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(slot.Value)
	return v, v != ""
}

type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// NewResponse builds a plain-text response. Empty speech or reprompt is
// omitted.
func NewResponse(speech, reprompt string, endSession bool) ResponseEnvelope {
	var r Response
	if speech != "" {
		r.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: speech}
	}
	if reprompt != "" {
		r.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: reprompt}}
	}
	r.ShouldEndSession = &endSession
	return ResponseEnvelope{Version: "1.0", Response: r}
}
