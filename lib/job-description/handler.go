package jobdeschandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"jd-generator-backend/config"
	ollamaclient "jd-generator-backend/lib/job-description/ollama-client"
	jobdescapimodels "jd-generator-backend/models/api/jobdesc"
)

// variationCount is the number of independently generated records per request.
const variationCount = 3

type Provider interface {
	GenerateDescriptions(ctx context.Context, designation string, yoe int, skills []string, extraInfo string) ([]jobdescapimodels.DescriptionRecord, error)
}

type impl struct {
	client ollamaclient.Provider
	model  string
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: ollamaclient.NewClient(config.Conf.AI.Ollama.OllamaURL, config.Conf.AI.Ollama.OllamaModel),
		model:  config.Conf.AI.Ollama.OllamaModel,
	}
}

// CheckConfig reports whether the generator has everything it needs to reach
// the model backend.
func CheckConfig() error {
	if config.Conf.AI.Ollama.OllamaURL == "" {
		return errors.New("ollama url is not configured")
	}
	if config.Conf.AI.Ollama.OllamaModel == "" {
		return errors.New("ollama model is not configured")
	}
	return nil
}

func (i impl) getLogger() *log.Entry {
	return log.
		WithField("ai", "ollama").
		WithField("model", i.model)
}

// GenerateDescriptions produces variationCount records for the request. The
// prompt is built once and sent once per variation; each raw answer is
// normalized independently, so a malformed answer degrades that variation to
// a deterministic fallback record instead of failing the call. A transport
// error from the backend aborts the whole call without partial results.
func (i impl) GenerateDescriptions(ctx context.Context, designation string, yoe int, skills []string, extraInfo string) ([]jobdescapimodels.DescriptionRecord, error) {
	prompt := BuildPrompt(designation, yoe, skills, extraInfo)

	records := make([]jobdescapimodels.DescriptionRecord, 0, variationCount)
	for variation := 1; variation <= variationCount; variation++ {
		now := time.Now()
		answer, err := i.client.Complete(ctx, prompt)
		if err != nil {
			i.getLogger().
				WithField("variation", variation).
				WithError(err).
				Error("job description generation request failed")
			return nil, errors.Wrap(err, "failed to generate job description variation")
		}
		i.getLogger().
			WithField("variation", variation).
			WithField("answer_duration_sec", time.Since(now).Seconds()).
			Info("received job description answer")
		records = append(records, ParseModelResponse(answer, designation, yoe, skills))
	}
	return records, nil
}
