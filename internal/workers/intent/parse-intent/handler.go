// internal/workers/intent/parse-intent/handler.go
package parseintent

import (
	"context"
	"encoding/json"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/common/metrics"
	"leadrank-workers/internal/common/validation"
	"leadrank-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "parse-intent"

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       l,
		errorHandler: errors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, []byte(job.Variables))
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeInvalidIntentFormat)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return err
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	return h.completeJob(ctx, client, job, output)
}

// Execute validates the raw intent payload against the intent schema and
// normalizes it into a typed Intent.
func (h *Handler) Execute(_ context.Context, payload []byte) (*Output, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, errors.NewInvalidIntentFormatError(err.Error())
	}

	// Job variables can carry unrelated process state; validate only the
	// intent-relevant portion.
	candidate := map[string]interface{}{}
	for _, key := range []string{"purpose", "sector", "region", "preferences"} {
		if v, ok := doc[key]; ok {
			candidate[key] = v
		}
	}

	result, err := validation.ValidateAgainstSchema(candidate, intentSchema)
	if err != nil {
		return nil, errors.NewInvalidIntentFormatError(err.Error())
	}
	if !result.Valid {
		details := validation.FormatErrors(result)
		h.logger.Warn("intent payload rejected", map[string]interface{}{
			"errors": details,
		})
		return nil, errors.NewInvalidIntentFormatError(details)
	}

	var input Input
	raw, _ := json.Marshal(candidate)
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, errors.NewInvalidIntentFormatError(err.Error())
	}

	intent := models.Intent{
		Purpose: models.Purpose(input.Purpose),
		Sector:  input.Sector,
		Region:  input.Region,
	}
	if input.Preferences != nil {
		prefsRaw, _ := json.Marshal(input.Preferences)
		if err := json.Unmarshal(prefsRaw, &intent.Preferences); err != nil {
			return nil, errors.NewInvalidIntentFormatError(err.Error())
		}
	}

	if !intent.Purpose.Known() {
		h.logger.Warn("unrecognized purpose, ranking will use baseline scoring only", map[string]interface{}{
			"purpose": input.Purpose,
		})
	}

	return &Output{
		Intent:       intent,
		PurposeKnown: intent.Purpose.Known(),
	}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return err
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return err
	}
	return nil
}
