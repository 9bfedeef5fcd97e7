//go:build integration

package deploys

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	apmaws "github.com/aragon/apmrelease/internal/aws"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func TestS3StoreAgainstLocalStack(t *testing.T) {
	ctx := context.Background()
	endpoint := strings.TrimSpace(os.Getenv("AWS_ENDPOINT_URL"))
	if endpoint == "" {
		t.Skip("AWS_ENDPOINT_URL not set; skipping LocalStack integration tests")
	}

	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	cfg, err := apmaws.LoadAWSConfigWithContext(ctx, "", "us-east-1")
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = awssdk.String(endpoint)
		o.UsePathStyle = true
	})

	bucket := fmt.Sprintf("apmrelease-it-%d", time.Now().UnixNano())
	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: awssdk.String(bucket)})
	require.NoError(t, err)

	store := S3Store{Client: client}
	base := "s3://" + bucket + "/voting/"

	_, err = store.Load(ctx, RecordPath(base, "rinkeby"))
	require.ErrorIs(t, err, ErrFileNotFound)

	require.NoError(t, store.Save(ctx, RecordPath(base, "rinkeby"), []byte(rinkebyRecord)))

	updater := Updater{Store: store, Clock: fixedClock}
	_, err = updater.Update(ctx, Request{Base: base, App: "voting", Network: "rinkeby", Version: "1.1.0", CID: "QmIT"})
	require.NoError(t, err)

	data, err := store.Load(ctx, RecordPath(base, "rinkeby"))
	require.NoError(t, err)
	require.Contains(t, string(data), "QmIT")
}
