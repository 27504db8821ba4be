package auditor

import "github.com/vreid/janken/internal/pkg/rules"

type VerifyRequest struct {
	Key  string `json:"key"`
	Move string `json:"move"`
	HMAC string `json:"hmac"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type MovesResponse struct {
	Moves []string `json:"moves"`
}

type OutcomeResponse struct {
	First   string        `json:"first"`
	Second  string        `json:"second"`
	Verdict rules.Verdict `json:"verdict"`
}

type MatrixResponse struct {
	Moves  []string          `json:"moves"`
	Matrix [][]rules.Verdict `json:"matrix"`
}
