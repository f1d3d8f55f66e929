// Package twiml renders Twilio messaging responses. Only the Message verb
// is needed: every webhook gets back zero or more outbound texts.
package twiml

import (
	"bytes"
	"encoding/xml"
)

// Response is the root TwiML document
type Response struct {
	XMLName  xml.Name `xml:"Response"`
	Messages []string `xml:"Message"`
}

// Render serializes the replies as a TwiML messaging response
func Render(messages []string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(Response{Messages: messages}); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
