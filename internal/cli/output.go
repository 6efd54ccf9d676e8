package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Candidate:
		o.printCandidate(v)
	case []Candidate:
		o.printCandidates(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Candidate response type (matches API)
type Candidate struct {
	ID              string `json:"id,omitempty"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ShouldSendOffer bool   `json:"shouldSendOffer"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCandidate(c Candidate) {
	offer := "no"
	if c.ShouldSendOffer {
		offer = "yes"
	}
	fmt.Fprintf(o.w, "Candidate: %s %s (%s)\n", c.FirstName, c.LastName, c.ID)
	fmt.Fprintf(o.w, "Send offer: %s\n", offer)
}

func (o *Output) printCandidates(cs []Candidate) {
	if len(cs) == 0 {
		fmt.Fprintln(o.w, "No candidates")
		return
	}
	for i, c := range cs {
		if i > 0 {
			fmt.Fprintln(o.w)
		}
		o.printCandidate(c)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
