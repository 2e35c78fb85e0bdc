package core

import "context"

type (
	// Concept is an explained programming concept, with English and
	// Bangla explanations and an optional runnable code sample.
	Concept struct {
		ID                 int64  `json:"id"`
		Topic              string `json:"topic"`
		ExplanationEnglish string `json:"explanationEnglish"`
		ExplanationBangla  string `json:"explanationBangla"`
		Code               string `json:"code"`
		Input              string `json:"input"`
		Output             string `json:"output"`
		SubTopic           string `json:"subTopic"`
	}

	// ConceptStore defines the persistence layer for concepts.
	ConceptStore interface {
		ListConcepts(ctx context.Context) ([]*Concept, error)
		CreateConcept(ctx context.Context, concept *Concept) (int64, error)
		UpdateConcept(ctx context.Context, concept *Concept) error
		DeleteConcept(ctx context.Context, id int64) error
	}
)
