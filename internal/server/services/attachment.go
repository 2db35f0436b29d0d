package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/authz"
	"github.com/dmitrijs2005/chatsync/internal/server/config"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

// PresignExpiry bounds the lifetime of every presigned attachment URL.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// AttachmentService hands out presigned S3 URLs for encrypted attachment blobs.
// The blobs themselves never pass through the server.
type AttachmentService struct {
	repomanager repomanager.RepositoryManager
	config      *config.Config
	now         func() time.Time
}

func NewAttachmentService(m repomanager.RepositoryManager, cfg *config.Config) *AttachmentService {
	return &AttachmentService{repomanager: m, config: cfg, now: time.Now}
}

// StorageKey returns a fresh object key under the user's prefix.
func (s *AttachmentService) StorageKey(userID string) string {
	d := s.now().UTC()
	return fmt.Sprintf("attachments/%s/%d/%02d/%02d/%s", userID, d.Year(), d.Month(), d.Day(), uuid.NewString())
}

func (s *AttachmentService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// UploadURL reserves a storage key for userID and returns it along with a
// presigned PUT URL. The client stores the key as the attachment's cipher_uri.
func (s *AttachmentService) UploadURL(ctx context.Context, userID string) (string, string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := s.StorageKey(userID)

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// DownloadURL returns a presigned GET URL for an attachment. Holders of
// read:any:message may fetch any attachment; everyone else only those in a
// room they belong to, and the rest are reported as not found.
func (s *AttachmentService) DownloadURL(ctx context.Context, userID, attachmentID string) (string, error) {
	conn := s.repomanager.Conn()

	poss, err := widestGrant(ctx, s.repomanager.Users(conn), userID, authz.ActionRead, authz.ResourceMessage)
	if err != nil {
		return "", err
	}
	att, err := s.repomanager.Attachments(conn).FindByID(ctx, attachmentID)
	if err != nil {
		return "", err
	}
	if poss != authz.Any {
		ok, err := s.repomanager.Members(conn).IsMember(ctx, att.RoomID, userID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", common.ErrorNotFound
		}
	}

	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := att.CipherURI
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
