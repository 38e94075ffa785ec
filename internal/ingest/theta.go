package ingest

import (
	"math"

	"github.com/pkg/errors"
)

// ResolveTheta turns a caller-supplied minFrequency into an absolute row
// count. minFrequency in (0, 1] is read as a fraction of numRows; anything
// above 1 is read as an absolute row count already. This mirrors the
// original system accepting either a percentage or a row count for the
// same parameter.
func ResolveTheta(minFrequency float64, numRows int) (int, error) {
	if numRows <= 0 {
		return 0, errors.New("ingest: numRows must be positive")
	}
	if minFrequency <= 0 {
		return 0, errors.Errorf("ingest: minFrequency must be positive, got %v", minFrequency)
	}

	if minFrequency <= 1.0 {
		if minFrequency*float64(numRows) < 1.0 {
			return 0, errors.Errorf("ingest: minFrequency %v is too small to match even one row out of %d", minFrequency, numRows)
		}
		return int(math.Ceil(minFrequency * float64(numRows))), nil
	}

	theta := int(minFrequency)
	if theta > numRows {
		return 0, errors.Errorf("ingest: minFrequency %d exceeds the database size %d", theta, numRows)
	}
	return theta, nil
}
