package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	incoming := uuid.New().String()

	ctx, id := WithCorrelationID(context.Background(), incoming)
	assert.Equal(t, incoming, id)
	assert.Equal(t, incoming, GetCorrelationID(ctx))

	_, generated := WithCorrelationID(context.Background(), "not-a-uuid")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", generated)

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_DevelopmentKeepsDashboardFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	defer func() { L = previous }()

	ctx, id := WithCorrelationID(context.Background())
	ctx = WithPeopleID(ctx, "123")

	ForContext(ctx).WithFields(Fields{"view": "kpi", "query": "ignorado"}).Info("relatório")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+id)
	assert.Contains(t, out, "people_id=123")
	assert.Contains(t, out, "view=kpi")
	assert.NotContains(t, out, "ignorado")
}
