package util

import (
	"fmt"
	"math/rand"
)

// GenerateRequestID builds a short, human friendly correlation id that is
// sent with each API call and echoed in the logs.
func GenerateRequestID() string {
	actions := []string{
		"translating", "aligning", "tuning", "training", "deploying",
		"parsing", "scoring", "testing", "merging", "glossing",
	}
	subjects := []string{
		"workspace", "project", "document", "model", "corpus",
		"sentence", "phrase", "lexicon", "segment", "category",
	}

	subject := subjects[rand.Intn(len(subjects))]
	action := actions[rand.Intn(len(actions))]
	suffix := fmt.Sprintf("%04x", rand.Intn(65536))

	return fmt.Sprintf("%s_%s_%s", subject, action, suffix)
}
