package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

// stubPresign replaces the AWS seams for the duration of the test and
// records the region and endpoint handed to them.
func stubPresign(t *testing.T) (region, endpoint *string) {
	t.Helper()
	origLoad, origNew, origPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient = origLoad, origNew, origPre
		presignPutObject, presignGetObject = origPut, origGet
	})

	region, endpoint = new(string), new(string)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		*region = lo.Region
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		*endpoint = aws.ToString(opts.BaseEndpoint)
		return &s3.Client{}
	}
	newS3PresignClient = func(*s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	presignPutObject = func(_ *s3.PresignClient, _ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://s3/put/" + *in.Bucket + "/" + *in.Key}, nil
	}
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://s3/get/" + *in.Bucket + "/" + *in.Key}, nil
	}
	return region, endpoint
}

func TestUploadURL(t *testing.T) {
	region, endpoint := stubPresign(t)
	svc := NewAttachmentService(repomanager.NewMemoryRepositoryManager(), testConfig())

	key, url, err := svc.UploadURL(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "attachments/a/"), key)
	assert.Equal(t, "https://s3/put/attachments/"+key, url)
	assert.Equal(t, "us-east-1", *region)
	assert.Equal(t, "http://127.0.0.1:9000", *endpoint)
}

func TestUploadURL_Errors(t *testing.T) {
	stubPresign(t)
	svc := NewAttachmentService(repomanager.NewMemoryRepositoryManager(), testConfig())

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, _, err := svc.UploadURL(context.Background(), "a")
	assert.EqualError(t, err, "load-fail")
}

func TestDownloadURL_RequiresMembership(t *testing.T) {
	stubPresign(t)
	repos := repomanager.NewMemoryRepositoryManager()
	ctx := context.Background()
	seedUser(t, repos, "a")
	seedUser(t, repos, "b")
	seedRoom(t, repos, "r1", "a")
	_, err := repos.Messages(nil).Upsert(ctx, &models.Message{ID: "m1", Cipher: "c", Type: models.MessageTypeDefault, UserID: "a", RoomID: "r1"})
	require.NoError(t, err)
	require.NoError(t, repos.Attachments(nil).Upsert(ctx, &models.Attachment{
		ID: "at1", CipherURI: "attachments/a/key", Type: models.AttachmentTypeImage, UserID: "a", MessageID: "m1", RoomID: "r1",
	}))
	svc := NewAttachmentService(repos, testConfig())

	url, err := svc.DownloadURL(ctx, "a", "at1")
	require.NoError(t, err)
	assert.Equal(t, "https://s3/get/attachments/attachments/a/key", url)

	_, err = svc.DownloadURL(ctx, "b", "at1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = svc.DownloadURL(ctx, "a", "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDownloadURL_Grants(t *testing.T) {
	stubPresign(t)
	repos := repomanager.NewMemoryRepositoryManager()
	ctx := context.Background()
	seedUser(t, repos, "a")
	seedUserWithRole(t, repos, "root", models.RoleAdmin)
	seedUserWithRole(t, repos, "guest", models.Role("guest"))
	seedRoom(t, repos, "r1", "a", "guest")
	require.NoError(t, repos.Attachments(nil).Upsert(ctx, &models.Attachment{
		ID: "at1", CipherURI: "k", Type: models.AttachmentTypeDocument, UserID: "a", MessageID: "m1", RoomID: "r1",
	}))
	svc := NewAttachmentService(repos, testConfig())

	// read:any:message needs no membership
	url, err := svc.DownloadURL(ctx, "root", "at1")
	require.NoError(t, err)
	assert.Equal(t, "https://s3/get/attachments/k", url)

	// a role without message grants is refused even as a member
	_, err = svc.DownloadURL(ctx, "guest", "at1")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = svc.DownloadURL(ctx, "ghost", "at1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
