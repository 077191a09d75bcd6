package patients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"

	"github.com/dentalops/roster/errors"
)

var CollaboratorsModule = fx.Provide(
	collaboratorsConfigProvider,
	httpClientProvider,
	NewIdentityService,
	NewNoteService,
)

//go:generate mockgen --build_flags=--mod=mod -source=./users.go -destination=./test/mock_users.go -package test MockIdentityService,MockNoteService

// IdentityService resolves acting users from opaque identity tokens.
type IdentityService interface {
	ResolveUser(ctx context.Context, token string, field string) (string, error)
	GetUser(ctx context.Context, userId string) (*User, error)
}

// NoteService appends audit notes to a patient chart. Best effort from the
// roster's perspective.
type NoteService interface {
	CreateNote(ctx context.Context, patientId string, authorUsername string, text string) error
}

type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
}

type CollaboratorsConfig struct {
	IdentityHost string `envconfig:"ROSTER_IDENTITY_CLIENT_ADDRESS" default:"http://identity:9107"`
	NotesHost    string `envconfig:"ROSTER_NOTES_CLIENT_ADDRESS" default:"http://notes:9120"`
}

func collaboratorsConfigProvider() (CollaboratorsConfig, error) {
	cfg := CollaboratorsConfig{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func httpClientProvider() *http.Client {
	return &http.Client{}
}

type identityService struct {
	host       string
	httpClient *http.Client
}

var _ IdentityService = &identityService{}

func NewIdentityService(config CollaboratorsConfig, httpClient *http.Client) IdentityService {
	return &identityService{
		host:       config.IdentityHost,
		httpClient: httpClient,
	}
}

func (s *identityService) ResolveUser(ctx context.Context, token string, field string) (string, error) {
	url := fmt.Sprintf("%s/v1/token/introspect?field=%s", s.host, field)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", token)

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error resolving identity token: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return "", errors.Unauthorized
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected identity service response %v", res.StatusCode)
	}

	body := struct {
		Value string `json:"value"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("error decoding identity response: %w", err)
	}
	return body.Value, nil
}

func (s *identityService) GetUser(ctx context.Context, userId string) (*User, error) {
	url := fmt.Sprintf("%s/v1/users/%s", s.host, userId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, errors.NotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected identity service response %v", res.StatusCode)
	}

	user := &User{}
	if err := json.NewDecoder(res.Body).Decode(user); err != nil {
		return nil, fmt.Errorf("error decoding user: %w", err)
	}
	return user, nil
}

type noteService struct {
	host       string
	httpClient *http.Client
}

var _ NoteService = &noteService{}

func NewNoteService(config CollaboratorsConfig, httpClient *http.Client) NoteService {
	return &noteService{
		host:       config.NotesHost,
		httpClient: httpClient,
	}
}

func (s *noteService) CreateNote(ctx context.Context, patientId string, authorUsername string, text string) error {
	payload, err := json.Marshal(map[string]string{
		"author": authorUsername,
		"text":   text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/patients/%s/notes", s.host, patientId)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected note service response %v", res.StatusCode)
	}
	return nil
}
