package app

import (
	"time"

	"github.com/thushan/ctoken/internal/config"
	"github.com/thushan/ctoken/internal/core/domain"
)

// ModelNameTimeFormat renders yyyyMMdd-HHmmss
const ModelNameTimeFormat = "20060102-150405"

// BuildModelRequest assembles the create-model body, the model name is the
// configured prefix followed by the local time of the call.
func BuildModelRequest(cfg config.ModelConfig, documentIDs []int, now time.Time) domain.ModelCreateRequest {
	return domain.ModelCreateRequest{
		Name:          cfg.NamePrefix + now.Format(ModelNameTimeFormat),
		ProjectID:     cfg.ProjectID,
		DocumentIDs:   documentIDs,
		IsAutoDeploy:  cfg.AutoDeploy,
		IsTestingAuto: cfg.AutoTesting,
		IsTuningAuto:  cfg.AutoTuning,
	}
}
