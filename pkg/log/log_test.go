package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentKeepsOnlyRelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	l := L.WithFields(Fields{"user_agent": "curl"}).(*logger)
	assert.Empty(t, l.entry.Data)

	l = L.WithFields(Fields{"snapshot_id": "abc", "user_agent": "curl"}).(*logger)
	assert.Equal(t, "abc", l.entry.Data["snapshot_id"])
	assert.NotContains(t, l.entry.Data, "user_agent")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	l := L.WithFields(Fields{"user_agent": "curl", "referer": "x"}).(*logger)
	assert.Equal(t, "curl", l.entry.Data["user_agent"])
	assert.Equal(t, "x", l.entry.Data["referer"])
}
