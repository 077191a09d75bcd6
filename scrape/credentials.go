package scrape

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	credentialsCollectionName  = "scraper_credentials"
	scraperUsersCollectionName = "scraper_users"

	userStatusValid = "Valid"
)

var ErrCredentialsNotFound = errors.New("credentials not found")
var ErrUserNotValidated = errors.New("user credentials not validated")

//go:generate mockgen --build_flags=--mod=mod -source=./credentials.go -destination=./test/mock_credentials.go -package test MockCredentialStore

// CredentialStore resolves stored portal credentials and their validation
// state for a (company, practice, website, facility) tuple.
type CredentialStore interface {
	GetCredentials(ctx context.Context, company string, practice string, website string, facilityId *string) (*Credentials, error)
	EnsureValidated(ctx context.Context, username string) error
}

type Credentials struct {
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"password"`
	JobId    string `bson:"-" json:"jobid,omitempty"`
}

type credentialStore struct {
	credentials *mongo.Collection
	users       *mongo.Collection
}

var _ CredentialStore = &credentialStore{}

func NewCredentialStore(db *mongo.Database) CredentialStore {
	return &credentialStore{
		credentials: db.Collection(credentialsCollectionName),
		users:       db.Collection(scraperUsersCollectionName),
	}
}

func (s *credentialStore) GetCredentials(ctx context.Context, company string, practice string, website string, facilityId *string) (*Credentials, error) {
	selector := bson.M{
		"company":  company,
		"practice": practice,
		"website":  website,
	}
	if facilityId != nil {
		selector["facilityId"] = *facilityId
	}

	creds := &Credentials{}
	err := s.credentials.FindOne(ctx, selector).Decode(creds)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCredentialsNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching credentials: %w", err)
	}

	return creds, nil
}

func (s *credentialStore) EnsureValidated(ctx context.Context, username string) error {
	selector := bson.M{
		"username": username,
		"status":   userStatusValid,
	}

	err := s.users.FindOne(ctx, selector).Err()
	if err == mongo.ErrNoDocuments {
		return ErrUserNotValidated
	} else if err != nil {
		return fmt.Errorf("error fetching scraper user: %w", err)
	}

	return nil
}
