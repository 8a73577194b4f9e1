package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// retrieveCredentials prefers DB_USERNAME/DB_PASSWORD from the environment
// and falls back to the Secrets Manager entry named by secretID.
func retrieveCredentials(secretID string) (string, string, error) {
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	if username != "" && password != "" {
		return username, password, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", fmt.Errorf("load AWS config: %w", err)
	}
	client := secretsmanager.NewFromConfig(cfg)

	result, err := client.GetSecretValue(context.TODO(), &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("get secret %q: %w", secretID, err)
	}

	var creds credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &creds); err != nil {
		return "", "", fmt.Errorf("decode secret %q: %w", secretID, err)
	}
	return creds.Username, creds.Password, nil
}
