package serviceImp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvarsaurus/agriculture-programs/database"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert/repositoryImp"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert/service"
)

type fakeSender struct {
	sent []alert.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg alert.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func newService(t *testing.T, sender Sender) service.AlertService {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "alerts.db"))
	require.NoError(t, err)
	return New(repositoryImp.New(db), sender)
}

func TestSendLogsDelivery(t *testing.T) {
	fs := &fakeSender{}
	s := newService(t, fs)

	entry, err := s.Send(context.Background(), service.AlertRequest{
		Subject: "High Temperature Alert", Message: "Consider irrigation.", Recipient: "farmer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "sent", entry.Status)
	require.Len(t, fs.sent, 1)
	assert.Equal(t, fs.sent[0].ID, entry.MessageID)
	assert.Equal(t, "Consider irrigation.", fs.sent[0].Body)

	logs, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entry.MessageID, logs[0].MessageID)
}

func TestSendFailureIsReturnedAndLogged(t *testing.T) {
	boom := errors.New("auth: 535 bad credentials")
	s := newService(t, &fakeSender{err: boom})

	entry, err := s.Send(context.Background(), service.AlertRequest{Subject: "s", Message: "m", Recipient: "farmer@example.com"})
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, entry)
	assert.Equal(t, "failed", entry.Status)
	assert.Equal(t, boom.Error(), entry.Error)

	logs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "failed", logs[0].Status)
}

func TestSendHTMLBody(t *testing.T) {
	fs := &fakeSender{}
	s := newService(t, fs)
	_, err := s.Send(context.Background(), service.AlertRequest{
		Subject: "Heat", HTML: "<p>Too hot</p><ul><li>irrigate</li></ul>", Recipient: "farmer@example.com",
	})
	require.NoError(t, err)
	require.Len(t, fs.sent, 1)
	assert.Equal(t, "Too hot\n- irrigate", fs.sent[0].Body)
}

func TestSendValidation(t *testing.T) {
	fs := &fakeSender{}
	s := newService(t, fs)
	_, err := s.Send(context.Background(), service.AlertRequest{Message: "m", Recipient: "a@example.com"})
	assert.Error(t, err)
	_, err = s.Send(context.Background(), service.AlertRequest{Subject: "s", Recipient: "a@example.com"})
	assert.Error(t, err)
	assert.Empty(t, fs.sent)
}
