package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gatehouse/internal/domain/service"

	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestGooglePubSubPublisher_EmitProfileUpdate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv := pstest.NewServer()
	defer srv.Close()

	_, err := srv.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/p/topics/presence"})
	require.NoError(t, err)

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	p, err := NewGooglePubSubPublisher(ctx, "p", "presence", newDiscardLogger(), option.WithGRPCConn(conn))
	require.NoError(t, err)

	require.NoError(t, p.EmitProfileUpdate(ctx, testEvent()))
	require.NoError(t, p.Close())

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "profile.updated", msgs[0].Attributes["event"])
	assert.Equal(t, "req-42", msgs[0].Attributes["request_id"])

	var event service.ProfileUpdateEvent
	require.NoError(t, json.Unmarshal(msgs[0].Data, &event))
	assert.Equal(t, "acc-1", event.AccountID)
}

func TestGooglePubSubPublisher_MissingTopic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv := pstest.NewServer()
	defer srv.Close()

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	_, err = NewGooglePubSubPublisher(ctx, "p", "absent", newDiscardLogger(), option.WithGRPCConn(conn))
	assert.ErrorContains(t, err, "absent")
}
