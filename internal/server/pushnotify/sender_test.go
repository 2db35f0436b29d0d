package pushnotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticaster struct {
	sent []*messaging.MulticastMessage
	// fail lists tokens the fake rejects.
	fail map[string]bool
	err  error
}

func (f *fakeMulticaster) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, m)
	resp := &messaging.BatchResponse{}
	for _, tok := range m.Tokens {
		if f.fail[tok] {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: fmt.Errorf("unregistered %s", tok)})
			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true, MessageID: "id-" + tok})
	}
	return resp, nil
}

func TestFCMSender_Send(t *testing.T) {
	fake := &fakeMulticaster{}
	s := &FCMSender{client: fake, packageName: "com.chatty.android"}

	err := s.Send(context.Background(), Notification{
		Title:       "Team",
		CollapseKey: "r1",
		Tokens:      []string{"t1", "t2"},
		Data:        map[string]string{"roomId": "r1"},
	})
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	got := fake.sent[0]
	assert.Equal(t, []string{"t1", "t2"}, got.Tokens)
	assert.Equal(t, map[string]string{"roomId": "r1", "title": "Team"}, got.Data)
	require.NotNil(t, got.Android)
	assert.Equal(t, "r1", got.Android.CollapseKey)
	assert.Equal(t, "high", got.Android.Priority)
	assert.Equal(t, "com.chatty.android", got.Android.RestrictedPackageName)
	assert.True(t, got.APNS.Payload.Aps.ContentAvailable)
}

func TestFCMSender_SendBatches(t *testing.T) {
	fake := &fakeMulticaster{}
	s := &FCMSender{client: fake}

	tokens := make([]string, MaxTokensPerBatch+3)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("t%d", i)
	}
	require.NoError(t, s.Send(context.Background(), Notification{Tokens: tokens}))

	require.Len(t, fake.sent, 2)
	assert.Len(t, fake.sent[0].Tokens, MaxTokensPerBatch)
	assert.Equal(t, []string{"t500", "t501", "t502"}, fake.sent[1].Tokens)
}

func TestFCMSender_PartialFailure(t *testing.T) {
	fake := &fakeMulticaster{fail: map[string]bool{"t1": true}}
	s := &FCMSender{client: fake}

	assert.NoError(t, s.Send(context.Background(), Notification{Tokens: []string{"t1", "t2"}}))
}

func TestFCMSender_AllFailed(t *testing.T) {
	fake := &fakeMulticaster{fail: map[string]bool{"t1": true, "t2": true}}
	s := &FCMSender{client: fake}

	err := s.Send(context.Background(), Notification{Tokens: []string{"t1", "t2"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 tokens failed")
	assert.Contains(t, err.Error(), "unregistered t1")
}

func TestFCMSender_RequestError(t *testing.T) {
	boom := errors.New("quota exceeded")
	s := &FCMSender{client: &fakeMulticaster{err: boom}}

	err := s.Send(context.Background(), Notification{Tokens: []string{"t1"}})
	assert.ErrorIs(t, err, boom)
}

func TestFCMSender_NoTokens(t *testing.T) {
	fake := &fakeMulticaster{}
	s := &FCMSender{client: fake}

	require.NoError(t, s.Send(context.Background(), Notification{}))
	assert.Empty(t, fake.sent)
}

func TestNewFCMSender_Endpoint(t *testing.T) {
	var (
		mu     sync.Mutex
		tokens []string
		paths  []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Message struct {
				Token   string `json:"token"`
				Android struct {
					CollapseKey string `json:"collapse_key"`
				} `json:"android"`
			} `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "r1", body.Message.Android.CollapseKey)

		mu.Lock()
		tokens = append(tokens, body.Message.Token)
		paths = append(paths, r.URL.Path)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"projects/chatty/messages/` + body.Message.Token + `"}`))
	}))
	defer srv.Close()

	s, err := NewFCMSender(context.Background(), FCMOptions{ProjectID: "chatty", Endpoint: srv.URL, PackageName: "com.chatty.android"})
	require.NoError(t, err)

	require.NoError(t, s.Send(context.Background(), Notification{CollapseKey: "r1", Tokens: []string{"t1", "t2"}}))

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"t1", "t2"}, tokens)
	assert.Equal(t, []string{"/projects/chatty/messages:send", "/projects/chatty/messages:send"}, paths)
}

func TestNewFCMSender_RequiresProject(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCLOUD_PROJECT", "")

	_, err := NewFCMSender(context.Background(), FCMOptions{Endpoint: "http://127.0.0.1:1"})
	assert.Error(t, err)
}
