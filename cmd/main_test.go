package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig and restores them after the test
func resetEnv(t *testing.T) {
	saved := os.Environ()
	os.Clearenv()
	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range saved {
			k, v, _ := strings.Cut(kv, "=")
			os.Setenv(k, v)
		}
	})
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-14"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build date: 2026-10-14")
	assert.Contains(t, output, "Build commit: abcd1234")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, logger.EncodingJSON, cfg.logEncoding)

	assert.Equal(t, "http://localhost:8000", cfg.backendBaseURL)
	assert.Zero(t, cfg.backendTimeout)

	assert.Equal(t, 100*time.Millisecond, cfg.tickInterval)
	assert.Equal(t, 10*time.Second, cfg.redirectDelay)
	assert.Equal(t, services.GenericCandidatesPaymentMethods, cfg.genericCandidates)

	assert.Equal(t, storeRedis, cfg.storeBackend)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, 10, cfg.redisPoolSize)
	assert.Equal(t, 2, cfg.redisMinIdleConns)
	assert.Zero(t, cfg.redisExp)

	assert.False(t, cfg.journalEnabled)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 8, cfg.pgMaxIdleConns)

	assert.Empty(t, cfg.kafkaBrokers)
	assert.Equal(t, "checkout-outcomes", cfg.kafkaTopic)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_LOG_ENCODING", "console")

	os.Setenv("BACKEND_BASE_URL", "https://backend.example")
	os.Setenv("BACKEND_API_KEY", "key")
	os.Setenv("BACKEND_TIMEOUT_SECOND", "15")

	os.Setenv("CHECKOUT_TICK_MS", "250")
	os.Setenv("CHECKOUT_REDIRECT_SECOND", "5")
	os.Setenv("CHECKOUT_GENERIC_CANDIDATES", "account_types")

	os.Setenv("STORE_BACKEND", "memory")
	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_EXP_SECOND", "86400")

	os.Setenv("OUTCOME_JOURNAL_ENABLED", "true")
	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "checkout")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	os.Setenv("KAFKA_TOPIC", "outcomes")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.appHost)
	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.Equal(t, "console", cfg.logEncoding)

	assert.Equal(t, "https://backend.example", cfg.backendBaseURL)
	assert.Equal(t, "key", cfg.backendAPIKey)
	assert.Equal(t, 15*time.Second, cfg.backendTimeout)

	assert.Equal(t, 250*time.Millisecond, cfg.tickInterval)
	assert.Equal(t, 5*time.Second, cfg.redirectDelay)
	assert.Equal(t, services.GenericCandidatesAccountTypes, cfg.genericCandidates)

	assert.Equal(t, storeMemory, cfg.storeBackend)
	assert.Equal(t, "redis.example.com", cfg.redisHost)
	assert.Equal(t, 6380, cfg.redisPort)
	assert.Equal(t, 2, cfg.redisDB)
	assert.Equal(t, "redispass", cfg.redisPassword)
	assert.Equal(t, 24*time.Hour, cfg.redisExp)

	assert.True(t, cfg.journalEnabled)
	assert.Equal(t, "pg.example.com", cfg.pgHost)
	assert.Equal(t, 5433, cfg.pgPort)
	assert.Equal(t, "admin", cfg.pgUser)
	assert.Equal(t, "secret", cfg.pgPassword)
	assert.Equal(t, "checkout", cfg.pgDB)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.kafkaBrokers)
	assert.Equal(t, "outcomes", cfg.kafkaTopic)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric port", key: "REDIS_PORT", value: "abc"},
		{name: "non numeric tick", key: "CHECKOUT_TICK_MS", value: "fast"},
		{name: "unknown store", key: "STORE_BACKEND", value: "etcd"},
		{name: "unknown candidates", key: "CHECKOUT_GENERIC_CANDIDATES", value: "banks"},
		{name: "invalid journal flag", key: "OUTCOME_JOURNAL_ENABLED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			os.Setenv(tt.key, tt.value)

			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

// newBackend serves a crypto transaction with two candidate cryptocurrencies.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/transaction/1042", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1042,"amount":"100","currency":"USD","paymentMethod":3,"transactionStatus":1}`)
	})
	mux.HandleFunc("/api/v1/cryptocurrency", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":1,"name":"Bitcoin","code":"BTC"},{"id":2,"name":"Ethereum","code":"ETH"}]`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// waitHealthy polls the health route until the server answers.
func waitHealthy(t *testing.T, baseURL string) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/api/v1/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)
}

func runAndStartCheckout(t *testing.T, cfg config) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	baseURL := fmt.Sprintf("http://%s:%s", cfg.appHost, cfg.appPort)
	waitHealthy(t, baseURL)

	resp, err := http.Post(baseURL+"/api/v1/checkout/1042", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var snap struct {
		State   string `json:"state"`
		Title   string `json:"title"`
		Options []struct {
			ID int64 `json:"id"`
		} `json:"options"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "PROMPTING", snap.State)
	assert.Equal(t, "Cryptocurrency", snap.Title)
	assert.Len(t, snap.Options, 2)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(11 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestRun_MemoryStore(t *testing.T) {
	backend := newBackend(t)

	runAndStartCheckout(t, config{
		appHost:           "127.0.0.1",
		appPort:           "18086",
		logLevel:          "debug",
		backendBaseURL:    backend.URL,
		backendTimeout:    5 * time.Second,
		genericCandidates: services.GenericCandidatesPaymentMethods,
		storeBackend:      storeMemory,
	})
}

func TestRun_RedisStore(t *testing.T) {
	ctx := context.Background()

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	backend := newBackend(t)

	runAndStartCheckout(t, config{
		appHost:           "127.0.0.1",
		appPort:           "18087",
		logLevel:          "info",
		backendBaseURL:    backend.URL,
		genericCandidates: services.GenericCandidatesPaymentMethods,
		storeBackend:      storeRedis,
		redisHost:         redisHost,
		redisPort:         redisPort.Int(),
		redisPoolSize:     2,
		redisMinIdleConns: 1,
	})
}

func TestRun_RedisUnavailable(t *testing.T) {
	err := run(context.Background(), config{
		appHost:      "127.0.0.1",
		appPort:      "18088",
		logLevel:     "info",
		storeBackend: storeRedis,
		redisHost:    "127.0.0.1",
		redisPort:    1,
	})
	assert.Error(t, err)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), config{logLevel: "loud"})
	assert.Error(t, err)
}
