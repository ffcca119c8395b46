package positions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["Engineer","Analyst"]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	body, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if string(body) != `["Engineer","Analyst"]` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestClient_List_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.List(context.Background())
	if !errors.Is(err, common.ErrorPositionsUnavailable) {
		t.Fatalf("expected ErrorPositionsUnavailable, got %v", err)
	}
}

func TestClient_List_NoURLConfigured(t *testing.T) {
	c := NewClient("")
	_, err := c.List(context.Background())
	if !errors.Is(err, common.ErrorPositionsUnavailable) {
		t.Fatalf("expected ErrorPositionsUnavailable, got %v", err)
	}
}

func TestClient_List_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	_, err := c.List(context.Background())
	if !errors.Is(err, common.ErrorPositionsUnavailable) {
		t.Fatalf("expected ErrorPositionsUnavailable, got %v", err)
	}
}
