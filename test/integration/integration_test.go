// Package integration exercises a running server end to end. Point
// BASE_URL at a live instance; defaults to localhost:8080.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func waitReady(t *testing.T) {
	t.Helper()
	url := fmt.Sprintf("%s/healthz", baseURL())
	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			return
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("service not ready")
}

func TestIntegration_Healthz(t *testing.T) {
	waitReady(t)
	resp, err := http.Get(baseURL() + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestIntegration_OpenAPIServed(t *testing.T) {
	waitReady(t)
	resp, err := http.Get(baseURL() + "/openapi.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestIntegration_DocsServed(t *testing.T) {
	waitReady(t)
	resp, err := http.Get(baseURL() + "/docs")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	buf := make([]byte, 1024)
	n, _ := resp.Body.Read(buf)
	if !strings.Contains(string(buf[:n]), "swagger-ui") {
		t.Fatalf("expected swagger-ui in docs page")
	}
}

func TestIntegration_PublicCatalog(t *testing.T) {
	waitReady(t)
	for _, path := range []string{"/api/pets", "/api/products", "/api/announcements"} {
		resp, err := http.Get(baseURL() + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}

func TestIntegration_OrderRequiresSession(t *testing.T) {
	waitReady(t)
	body := `{"items":[{"productId":"x","quantity":1}],"shippingMunicipality":"R","shippingAddress":"A","paymentMethod":"card"}`
	resp, err := http.Post(baseURL()+"/api/orders", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	var e struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if e.Error != "login_required" {
		t.Fatalf("expected login_required, got %q", e.Error)
	}
}
