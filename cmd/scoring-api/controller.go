package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/weit-project/eit-toolkit/lib/alignment"
	http_annotator "github.com/weit-project/eit-toolkit/lib/annotation/http-annotator"
	"github.com/weit-project/eit-toolkit/lib/scoring"
)

type controller struct {
	scorer *scoring.Scorer
}

type detectorInfo struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"`
}

func (c controller) Score(ctx context.Context, original, answer string) (*scoring.Result, error) {
	result, err := c.scorer.Score(ctx, original, answer)
	if err != nil {
		var statusErr *http_annotator.StatusError
		if errors.As(err, &statusErr) || errors.Is(err, context.DeadlineExceeded) {
			return nil, NewHttpError(http.StatusBadGateway, err)
		}
		return nil, err
	}
	return result, nil
}

func (c controller) Align(original, answer string) alignment.Result {
	return alignment.Align(original, answer)
}

func (c controller) ListDetectors() []detectorInfo {
	detectors := c.scorer.Detectors()
	res := make([]detectorInfo, len(detectors))
	for i, d := range detectors {
		res[i] = detectorInfo{Name: d.Name(), Severity: d.Severity()}
	}
	return res
}
