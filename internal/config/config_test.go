package config

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("defaults without .env", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("TEMPLATE_CACHE_TTL", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, time.Hour, cfg.TemplateCacheTTL)
		assert.Equal(t, "challenge-answers", cfg.Events.AnswerTopic)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("TEMPLATE_CACHE_TTL", "15m")
		t.Setenv("EVENTS_ENABLED", "false")
		t.Setenv("CASDOOR_ENABLED", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 15*time.Minute, cfg.TemplateCacheTTL)
		assert.False(t, cfg.Events.Enabled)
		assert.True(t, cfg.Casdoor.Enabled)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("TEMPLATE_CACHE_TTL", "soon")
		t.Setenv("AUTO_MIGRATE", "maybe")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cfg.TemplateCacheTTL)
		assert.True(t, cfg.AutoMigrate)
	})
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/.env", []byte("ANSWER_TOPIC=graded-answers\n"), 0o600))
	chdir(t, dir)
	t.Setenv("ANSWER_TOPIC", "")
	os.Unsetenv("ANSWER_TOPIC")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "graded-answers", cfg.Events.AnswerTopic)
}

func TestEventConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := EventConfig{KafkaBrokers: "kafka-1:9092, kafka-2:9092,"}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.GetKafkaBrokers())

	publisher, err := (&EventConfig{Enabled: false}).CreateEventPublisher(logger)
	require.NoError(t, err)
	assert.IsType(t, &events.MockEventPublisher{}, publisher)

	publisher, err = (&EventConfig{Enabled: true, Publisher: "carrier-pigeon"}).CreateEventPublisher(logger)
	require.NoError(t, err)
	assert.IsType(t, &events.MockEventPublisher{}, publisher)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (testing.T.Chdir is unavailable before Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
