// internal/workers/leads/fetch-leads/handler.go
package fetchleads

import (
	"context"
	"encoding/json"
	"time"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/common/metrics"
	"leadrank-workers/internal/leadsource"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "fetch-leads"

type Handler struct {
	config       *Config
	source       leadsource.Source
	sourceName   string
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, source leadsource.Source, sourceName string, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		source:       source,
		sourceName:   sourceName,
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

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, errors.NewLeadFetchFailedError(h.sourceName, err))
		return err
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeLeadFetchFailed)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return err
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	return h.completeJob(ctx, client, job, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	start := time.Now()

	leads, err := h.source.FetchBySectorRegion(ctx, input.Sector, input.Region)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(leads))
	for i, lead := range leads {
		names[i] = lead.CompanyName
	}

	metrics.LeadsFetched.WithLabelValues(h.sourceName).Add(float64(len(leads)))
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())

	h.logger.Info("fetched leads", map[string]interface{}{
		"sector": input.Sector,
		"region": input.Region,
		"count":  len(leads),
	})

	return &Output{
		Leads:        leads,
		CompanyNames: names,
		Count:        len(leads),
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
