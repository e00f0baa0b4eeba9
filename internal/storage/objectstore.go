package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	appconfig "mumanager-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadTimeout bounds a single archive upload.
const UploadTimeout = 2 * time.Minute

// ObjectStore archives generated documents (invoice PDFs, contract files)
// to an S3-compatible bucket. When no storage credentials are configured it
// degrades to a no-op so document archiving stays optional.
type ObjectStore struct {
	client *s3.Client
	bucket string
}

// New builds an ObjectStore from config. Returns a disabled store (nil
// client) when the access key or bucket is missing.
func New(ctx context.Context, cfg *appconfig.Config) *ObjectStore {
	if cfg.Storage.AccessKey == "" || cfg.Storage.Bucket == "" {
		log.Println("[Storage] No object storage configured, document archiving disabled")
		return &ObjectStore{}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		log.Printf("[Storage] Failed to configure object storage client: %v", err)
		return &ObjectStore{}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
		}
	})

	return &ObjectStore{client: client, bucket: cfg.Storage.Bucket}
}

// Enabled reports whether archiving is configured
func (s *ObjectStore) Enabled() bool {
	return s.client != nil
}

// ArchiveInvoicePDF uploads an invoice PDF under invoices/<company>/
func (s *ObjectStore) ArchiveInvoicePDF(ctx context.Context, companyID, invoiceID int, pdf []byte) error {
	key := fmt.Sprintf("invoices/%d/invoice_%d_%s.pdf", companyID, invoiceID, time.Now().Format("20060102_150405"))
	return s.put(ctx, key, pdf, "application/pdf")
}

// ArchiveContractDocument uploads a contract document under contracts/<company>/
func (s *ObjectStore) ArchiveContractDocument(ctx context.Context, companyID, contractID int, doc []byte) error {
	key := fmt.Sprintf("contracts/%d/contract_%d_%s.bin", companyID, contractID, time.Now().Format("20060102_150405"))
	return s.put(ctx, key, doc, "application/octet-stream")
}

func (s *ObjectStore) put(ctx context.Context, key string, data []byte, contentType string) error {
	if s.client == nil {
		return nil
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
