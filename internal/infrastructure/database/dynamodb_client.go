package database

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Settings is the DynamoDB connection configuration, read from environment
// variables so the same binary runs against AWS and a local container.
//
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DYNAMODB_MAX_RETRIES (default: 3)
type Settings struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	MaxRetries int
}

func SettingsFromEnv() Settings {
	retries := 3
	if v, err := strconv.Atoi(os.Getenv("DYNAMODB_MAX_RETRIES")); err == nil && v > 0 {
		retries = v
	}
	return Settings{
		Region:     getenvDefault("AWS_REGION", "us-east-1"),
		AccessKey:  getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		MaxRetries: retries,
	}
}

// ConnectDynamoDB builds the client the workflow tables live behind. It
// aborts startup on a config error; a workflow engine without its ledger
// store has nothing to serve.
func ConnectDynamoDB() *dynamodb.Client {
	s := SettingsFromEnv()
	cfg, err := newAWSConfig(context.Background(), s)
	if err != nil {
		log.Fatalf("[database][infra] dynamodb config failed err=%v", err)
	}
	if s.Endpoint != "" {
		log.Printf("[database][infra] dynamodb connected region=%s endpoint=%s", s.Region, s.Endpoint)
	} else {
		log.Printf("[database][infra] dynamodb connected region=%s", s.Region)
	}
	return dynamodb.NewFromConfig(cfg)
}

func newAWSConfig(ctx context.Context, s Settings) (aws.Config, error) {
	// Local DynamoDB ignores credentials but the SDK still requires a
	// provider, hence the "local" defaults.
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(s.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, "")),
		config.WithRetryMaxAttempts(s.MaxRetries),
	}

	if s.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: s.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
