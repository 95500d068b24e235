package logging

import (
	"testing"

	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewBuildsBothModes(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), DevelopmentConfig()} {
		l, err := New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, l.Logger)
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil).Logger)

	l := NewNop()
	assert.Same(t, l, OrNop(l))
}

func TestFieldHelpers(t *testing.T) {
	l, logs := NewObserved()
	l.Named("tracker").Info("activated",
		ID("rct2.wall.wc1"),
		Kind(types.KindWall),
		Count("active", 3),
		IDs("items", []string{"a", "b"}),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "tracker", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, "rct2.wall.wc1", fields["id"])
	assert.Equal(t, "wall", fields["kind"])
	assert.EqualValues(t, 3, fields["active"])
}

func TestKindFieldRendersUnknown(t *testing.T) {
	l, logs := NewObserved()
	l.Info("stale", Kind(types.KindUnknown))

	assert.Equal(t, "unknown", logs.All()[0].ContextMap()["kind"])
}
