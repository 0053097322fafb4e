package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogUseCaseObserver_WritesStructuredEntries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := setupServices(t, NewLogUseCaseObserver(zap.New(core)))
	ctx := context.Background()

	p := s.createProject(t, "RFP", "Acme")
	_, err := s.selections.Toggle(ctx, p.ID, domain.SelectProfiles, "99")
	require.Error(t, err)

	created := logs.FilterField(zap.String("use_case", "create-project")).All()
	require.Len(t, created, 1)
	assert.Equal(t, zapcore.InfoLevel, created[0].Level)
	assert.Equal(t, "ACM01", created[0].ContextMap()["short_id"])

	failed := logs.FilterField(zap.String("use_case", "toggle-selection")).All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, false, failed[0].ContextMap()["success"])
	assert.Contains(t, failed[0].ContextMap()["error"], "not found")
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
