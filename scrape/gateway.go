package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kelseyhightower/envconfig"

	"github.com/dentalops/roster/patients"
)

//go:generate mockgen --build_flags=--mod=mod -source=./gateway.go -destination=./test/mock_gateway.go -package test MockGateway

// Gateway submits scraping jobs to the external request queue. Submission
// is fire-and-forget; the queue does not report job progress back.
type Gateway interface {
	Submit(ctx context.Context, job Job) error
}

type Job struct {
	Credentials Credentials         `json:"creds"`
	Website     string              `json:"website"`
	JobId       string              `json:"jobid"`
	Patients    []*patients.Patient `json:"patients"`
	Project     string              `json:"project"`
	Spider      string              `json:"spider"`
	ScrapeMode  string              `json:"scrape_mode"`
}

type GatewayConfig struct {
	QueueUrl  string `envconfig:"ROSTER_SCRAPE_QUEUE_URL" required:"true"`
	QueueCode string `envconfig:"ROSTER_SCRAPE_QUEUE_CODE"`
}

func NewGatewayConfig() (GatewayConfig, error) {
	cfg := GatewayConfig{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}

type gateway struct {
	config     GatewayConfig
	httpClient *http.Client
}

var _ Gateway = &gateway{}

// NewGateway builds the queue client once at startup; the dispatcher
// receives it as an explicit dependency.
func NewGateway(config GatewayConfig, httpClient *http.Client) Gateway {
	return &gateway{
		config:     config,
		httpClient: httpClient,
	}
}

func (g *gateway) Submit(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("error marshaling scrape job: %w", err)
	}

	url := g.config.QueueUrl
	if g.config.QueueCode != "" {
		url = fmt.Sprintf("%s?code=%s", url, g.config.QueueCode)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error submitting scrape job: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected queue response %v", res.StatusCode)
	}
	return nil
}
