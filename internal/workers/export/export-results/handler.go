// internal/workers/export/export-results/handler.go
package exportresults

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"leadrank-workers/internal/common/errors"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/common/metrics"
	"leadrank-workers/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "export-results"

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// DefaultColumns is the column set rendered when the caller does not ask
// for specific ones.
var DefaultColumns = []string{
	models.FieldCompany,
	models.FieldWebsite,
	models.FieldIndustry,
	models.FieldCity,
	models.FieldState,
	models.FieldEmployeesCount,
	models.FieldRevenue,
	models.FieldHiringActivity,
	models.FieldRecentFunding,
	models.FieldRankScore,
}

type Handler struct {
	config       *Config
	sesClient    SESService
	snsClient    SNSService
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		sesClient:    sesClient,
		snsClient:    snsClient,
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
		h.errorHandler.HandleJobError(ctx, client, job, errors.NewExportRenderFailedError(err))
		return err
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeExportDeliveryFailed)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return err
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	return h.completeJob(ctx, client, job, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	columns := input.Columns
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	leads := input.RankedLeads
	if h.config.MaxRows > 0 && len(leads) > h.config.MaxRows {
		leads = leads[:h.config.MaxRows]
	}

	csvData, err := renderCSV(leads, columns)
	if err != nil {
		return nil, errors.NewExportRenderFailedError(err)
	}

	output := &Output{
		ExportID: uuid.New().String(),
		CSV:      csvData,
		RowCount: len(leads),
	}

	if h.config.EmailEnabled && input.RecipientEmail != "" {
		if err := h.sendEmail(ctx, input.RecipientEmail, output.ExportID, csvData, len(leads)); err != nil {
			return nil, errors.NewExportDeliveryFailedError("email", err)
		}
		output.EmailSent = true
	}

	if h.config.SMSEnabled && input.PhoneNumber != "" {
		if err := h.sendSMS(ctx, input.PhoneNumber, len(leads)); err != nil {
			return nil, errors.NewExportDeliveryFailedError("sms", err)
		}
		output.SMSSent = true
	}

	h.logger.Info("export rendered", map[string]interface{}{
		"exportId":  output.ExportID,
		"rows":      output.RowCount,
		"emailSent": output.EmailSent,
		"smsSent":   output.SMSSent,
	})
	return output, nil
}

// renderCSV writes one row per lead in ranked order. The rank score is
// clipped to 0-100 for display; the underlying score is unbounded above.
func renderCSV(leads []models.Lead, columns []string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return "", err
	}

	for _, lead := range leads {
		row := make([]string, len(columns))
		for i, col := range columns {
			if col == models.FieldRankScore {
				row[i] = formatDisplayScore(lead.Score())
				continue
			}
			row[i] = lead.Str(col)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatDisplayScore(score float64) string {
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return strconv.FormatFloat(score, 'f', 1, 64)
}

func (h *Handler) sendEmail(ctx context.Context, recipient, exportID, csvData string, rows int) error {
	if h.sesClient == nil {
		return fmt.Errorf("email delivery requested but SES client not configured")
	}

	subject := fmt.Sprintf("Ranked leads export (%d rows)", rows)
	body := fmt.Sprintf("Export %s\n\n%s", exportID, csvData)

	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(h.config.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}

func (h *Handler) sendSMS(ctx context.Context, phoneNumber string, rows int) error {
	if h.snsClient == nil {
		return fmt.Errorf("SMS delivery requested but SNS client not configured")
	}

	_, err := h.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(fmt.Sprintf("Your ranked leads export is ready: %d leads.", rows)),
	})
	return err
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
