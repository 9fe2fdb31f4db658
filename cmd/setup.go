package cmd

import (
	"github.com/rs/zerolog/log"

	"github.com/MokshaVS03/scam-url-detector/config"
	"github.com/MokshaVS03/scam-url-detector/internal/aiverdict"
	"github.com/MokshaVS03/scam-url-detector/internal/assessor"
	"github.com/MokshaVS03/scam-url-detector/internal/certcheck"
	"github.com/MokshaVS03/scam-url-detector/internal/domainage"
	"github.com/MokshaVS03/scam-url-detector/internal/fetcher"
	"github.com/MokshaVS03/scam-url-detector/internal/reputation"
)

// setupAssessor wires every collaborator into an assessor. Reputation and
// AI classification run in keyless mode when their API keys are unset and
// contribute their default findings.
func setupAssessor(cfg *config.Config) *assessor.Assessor {
	if cfg.VirusTotalAPIKey == "" {
		log.Info().Msg("virustotal api key not set, reputation lookups report zero detections")
	}

	if cfg.OpenAIAPIKey == "" {
		log.Info().Msg("openai api key not set, content classification uses heuristics only")
	}

	aiOpts := []aiverdict.Option{}
	if cfg.OpenAIModel != "" {
		aiOpts = append(aiOpts, aiverdict.WithModel(cfg.OpenAIModel))
	}

	return assessor.New(
		assessor.WithFetcher(fetcher.New()),
		assessor.WithCertChecker(certcheck.New(certcheck.WithTimeout(cfg.CollaboratorTimeout))),
		assessor.WithReputation(reputation.New(cfg.VirusTotalAPIKey)),
		assessor.WithClassifier(aiverdict.New(cfg.OpenAIAPIKey, aiOpts...)),
		assessor.WithDomainAger(domainage.New(domainage.WithTimeout(cfg.CollaboratorTimeout))),
		assessor.WithCollaboratorTimeout(cfg.CollaboratorTimeout),
	)
}
