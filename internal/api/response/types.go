package response

import (
	"github.com/mcoot/recruitment-api/internal/model"
)

// Candidate represents a candidate in API responses
type Candidate struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ShouldSendOffer bool   `json:"shouldSendOffer"`
}

// CandidateFromModel converts a model.Candidate to a response Candidate
func CandidateFromModel(c *model.Candidate) Candidate {
	return Candidate{
		ID:              c.ID.String(),
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		ShouldSendOffer: c.ShouldSendOffer,
	}
}

// CandidatesFromModel converts a list of candidates, never returning nil
func CandidatesFromModel(cs []*model.Candidate) []Candidate {
	out := make([]Candidate, len(cs))
	for i, c := range cs {
		out[i] = CandidateFromModel(c)
	}
	return out
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
