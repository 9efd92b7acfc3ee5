package analyzer

import (
	"context"
	"phishlens/pkg/domain"
)

// Analyzer turns an email into the classifier feature payload. It never
// fails: malformed input yields fewer domains, not an error.
//
//go:generate mockgen -package mockanalyzer -source=interface.go -destination=mock/mockanalyzer.go *
type Analyzer interface {
	Analyze(ctx context.Context, email domain.Email) domain.Features
}
