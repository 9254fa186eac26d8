package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"lostfound-market/internal/app"
	"lostfound-market/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// testConfig returns the default configuration with latency disabled and cheap hashing
func testConfig(t *testing.T) config.Config {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("failed to decode default config: %v", err)
	}
	cfg.Latency = config.LatencyConfig{}
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

// SetupTestRouter initializes the router over a freshly seeded in-memory store.
func SetupTestRouter(t *testing.T, tweak ...func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	for _, fn := range tweak {
		fn(&cfg)
	}
	market, err := app.New(cfg)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	return market.Router
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response.
// Created responses are unwrapped to their data payload.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
