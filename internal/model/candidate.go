package model

import "github.com/google/uuid"

// CandidateID uniquely identifies a candidate in the registry
type CandidateID = uuid.UUID

// Candidate is a registrant with name fields and an offer decision
type Candidate struct {
	ID              CandidateID
	FirstName       string
	LastName        string
	ShouldSendOffer bool
}

// Clone returns a copy of the candidate
func (c *Candidate) Clone() *Candidate {
	cp := *c
	return &cp
}

// SeedCandidateID is the identifier of the record the registry starts with
var SeedCandidateID = uuid.MustParse("18c46c62-3f33-4e6c-a2b2-49f7d9887051")

// SeedCandidates returns the records the registry is populated with at startup
func SeedCandidates() []*Candidate {
	return []*Candidate{
		{
			ID:        SeedCandidateID,
			FirstName: "John",
			LastName:  "Smith",
		},
	}
}
