package ops

import (
	"time"

	"github.com/hpungsan/repvault/internal/analytics"
	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/vault"
)

// FreshOutput contains the result of the Fresh operation.
type FreshOutput struct {
	Fresh []string `json:"fresh"`
	// AllTrainedRecently is set when history exists but every trained
	// muscle is still resting.
	AllTrainedRecently bool `json:"all_trained_recently"`
}

// Fresh computes which muscle groups are ready to train today from the
// full session history.
func Fresh(v vault.Store, cfg *config.Config, today time.Time) (*FreshOutput, error) {
	past, err := pastSessions(v, cfg)
	if err != nil {
		return nil, err
	}

	fresh := analytics.FreshMuscles(past, sessionDate(today))

	trained := false
	for _, w := range past {
		if len(w.Muscles) > 0 {
			trained = true
			break
		}
	}

	return &FreshOutput{
		Fresh:              fresh,
		AllTrainedRecently: trained && len(fresh) == 0,
	}, nil
}
