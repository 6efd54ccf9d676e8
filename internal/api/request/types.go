package request

// CandidateRequest is the request body for creating or replacing a candidate.
// ID is ignored on create and must match the path on replace.
type CandidateRequest struct {
	ID              string `json:"id,omitempty"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ShouldSendOffer bool   `json:"shouldSendOffer"`
}
