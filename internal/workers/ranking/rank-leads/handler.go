// internal/workers/ranking/rank-leads/handler.go
package rankleads

import (
	"context"
	"encoding/json"
	"time"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/common/metrics"
	"leadrank-workers/internal/ranking"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "rank-leads"

type Handler struct {
	config       *Config
	strategy     ranking.Strategy
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	now          func() time.Time
}

func NewHandler(config *Config, strategy ranking.Strategy, log logger.Logger) *Handler {
	if strategy == nil {
		strategy = ranking.NewRuleStrategy()
	}
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		strategy:     strategy,
		logger:       l,
		errorHandler: errors.NewErrorHandler(l),
		now:          time.Now,
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
		h.errorHandler.HandleJobError(ctx, client, job, errors.NewRankingFailedError(err.Error()))
		return err
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeRankingFailed)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return err
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	return h.completeJob(ctx, client, job, output)
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	evalTime := h.now()
	if input.EvaluationTime != "" {
		parsed, err := time.Parse(time.RFC3339, input.EvaluationTime)
		if err != nil {
			return nil, errors.NewRankingFailedError("invalid evaluationTime: " + err.Error())
		}
		evalTime = parsed
	}

	start := time.Now()
	ranked := h.strategy.Rank(input.EnrichedLeads, input.Intent, evalTime)
	elapsed := time.Since(start)

	purposeLabel := string(input.Intent.Purpose)
	metrics.LeadsRanked.WithLabelValues(purposeLabel).Add(float64(len(ranked)))
	metrics.RankDuration.WithLabelValues(purposeLabel).Observe(elapsed.Seconds())
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(elapsed.Seconds())

	if elapsed > h.config.SlowRankWarn {
		h.logger.Warn("slow ranking pass", map[string]interface{}{
			"count":    len(ranked),
			"purpose":  purposeLabel,
			"duration": elapsed.String(),
		})
	}

	var topScore float64
	if len(ranked) > 0 {
		topScore = ranked[0].Score()
	}

	h.logger.Info("ranked leads", map[string]interface{}{
		"count":    len(ranked),
		"purpose":  purposeLabel,
		"topScore": topScore,
	})

	return &Output{
		RankedLeads: ranked,
		Count:       len(ranked),
		TopScore:    topScore,
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
