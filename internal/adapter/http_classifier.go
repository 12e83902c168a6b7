package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dchas/praxis/internal/config"
	"github.com/dchas/praxis/models"
)

type httpGoalClassifier struct {
	client *resty.Client
}

// NewHTTPGoalClassifier builds the resty client for the external goal
// classifier. When cfg.BaseURL is empty the classifier endpoint of the
// account store is used.
func NewHTTPGoalClassifier(cfg config.Classifier, account config.Account) GoalClassifier {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = account.BaseURL
	}

	timeout := account.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpGoalClassifier{client: cli}
}

func (c *httpGoalClassifier) Classify(ctx context.Context, text string) (models.Classification, error) {
	var result models.Classification

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"text": text}).
		SetResult(&result).
		Post("/api/classify")
	if err != nil {
		return models.Classification{}, fmt.Errorf("classify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Classification{}, err
	}

	return result, nil
}
