package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSetupPrometheusServesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupPrometheus(r)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	srv := httptest.NewServer(r)
	defer srv.Close()

	if _, err := http.Get(srv.URL + "/ping"); err != nil {
		t.Fatalf("ping: %v", err)
	}

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(body), "gin_") {
		t.Fatal("metrics output missing gin collectors")
	}
}
