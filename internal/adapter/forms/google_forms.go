package forms

import (
	"context"
	"fmt"

	"studysupport/internal/config"
	"studysupport/internal/domain"
	"studysupport/internal/logger"

	"go.uber.org/zap"
	formsv1 "google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
)

// GoogleFormsExporter implements domain.FormExporter against the Google
// Forms API. Correct answers never leave the process; the remote form only
// carries question titles and option texts.
type GoogleFormsExporter struct {
	svc *formsv1.Service
}

// NewGoogleFormsExporter builds the Forms client from service-account
// credentials (inline JSON preferred, file path otherwise).
func NewGoogleFormsExporter(ctx context.Context, cfg config.GoogleConfig) (*GoogleFormsExporter, error) {
	opts := []option.ClientOption{
		option.WithScopes(formsv1.FormsBodyScope, formsv1.FormsResponsesReadonlyScope),
	}
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, fmt.Errorf("forms service-account credentials are required")
	}

	svc, err := formsv1.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Forms service: %w", err)
	}
	return &GoogleFormsExporter{svc: svc}, nil
}

// CreateForm creates the remote form, then batch-appends the identity items
// and one required RADIO item per question, in display order.
func (e *GoogleFormsExporter) CreateForm(ctx context.Context, title string, questions []domain.FormQuestion) (*domain.CreatedForm, error) {
	created, err := e.svc.Forms.Create(&formsv1.Form{
		Info: &formsv1.Info{
			Title:         title,
			DocumentTitle: title,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, domain.NewExternalServiceError("forms", err)
	}

	requests := []*formsv1.Request{
		createTextItem("Name", 0),
		createTextItem("Email", 1),
	}
	for i, q := range questions {
		options := make([]*formsv1.Option, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, &formsv1.Option{Value: opt})
		}
		requests = append(requests, &formsv1.Request{
			CreateItem: &formsv1.CreateItemRequest{
				Item: &formsv1.Item{
					Title: q.Title,
					QuestionItem: &formsv1.QuestionItem{
						Question: &formsv1.Question{
							Required: true,
							ChoiceQuestion: &formsv1.ChoiceQuestion{
								Type:    "RADIO",
								Options: options,
								Shuffle: false,
							},
						},
					},
				},
				Location: &formsv1.Location{
					Index:           int64(i + 2),
					ForceSendFields: []string{"Index"},
				},
			},
		})
	}

	if _, err := e.svc.Forms.BatchUpdate(created.FormId, &formsv1.BatchUpdateFormRequest{
		Requests: requests,
	}).Context(ctx).Do(); err != nil {
		return nil, domain.NewExternalServiceError("forms", err)
	}

	logger.Get().Info("Created remote form",
		zap.String("form_id", created.FormId),
		zap.Int("questions", len(questions)))

	return &domain.CreatedForm{
		FormID:       created.FormId,
		EditURL:      fmt.Sprintf("https://docs.google.com/forms/d/%s/edit", created.FormId),
		ResponderURL: created.ResponderUri,
	}, nil
}

func createTextItem(title string, index int64) *formsv1.Request {
	return &formsv1.Request{
		CreateItem: &formsv1.CreateItemRequest{
			Item: &formsv1.Item{
				Title: title,
				QuestionItem: &formsv1.QuestionItem{
					Question: &formsv1.Question{
						Required:     true,
						TextQuestion: &formsv1.TextQuestion{},
					},
				},
			},
			Location: &formsv1.Location{
				Index:           index,
				ForceSendFields: []string{"Index"},
			},
		},
	}
}

// ListItems returns the form's question items in the service's own order,
// which is authoritative for mapping answers back to questions.
func (e *GoogleFormsExporter) ListItems(ctx context.Context, formID string) ([]domain.FormItem, error) {
	form, err := e.svc.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, domain.NewExternalServiceError("forms", err)
	}

	items := make([]domain.FormItem, 0, len(form.Items))
	for _, item := range form.Items {
		if item.QuestionItem == nil || item.QuestionItem.Question == nil {
			continue
		}
		items = append(items, domain.FormItem{
			QuestionID: item.QuestionItem.Question.QuestionId,
			Title:      item.Title,
		})
	}
	return items, nil
}

// ListResponses returns each submission's answers keyed by remote question ID.
func (e *GoogleFormsExporter) ListResponses(ctx context.Context, formID string) ([]domain.FormResponse, error) {
	list, err := e.svc.Forms.Responses.List(formID).Context(ctx).Do()
	if err != nil {
		return nil, domain.NewExternalServiceError("forms", err)
	}

	responses := make([]domain.FormResponse, 0, len(list.Responses))
	for _, resp := range list.Responses {
		answers := make(map[string]string, len(resp.Answers))
		for questionID, answer := range resp.Answers {
			if answer.TextAnswers == nil || len(answer.TextAnswers.Answers) == 0 {
				continue
			}
			answers[questionID] = answer.TextAnswers.Answers[0].Value
		}
		responses = append(responses, domain.FormResponse{
			ResponseID: resp.ResponseId,
			Answers:    answers,
		})
	}
	return responses, nil
}

var _ domain.FormExporter = (*GoogleFormsExporter)(nil)
