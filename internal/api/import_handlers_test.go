package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/metrics"
	"bloomwatch/reforesta/internal/models/dtos"
	"bloomwatch/reforesta/internal/models/entities"
	"bloomwatch/reforesta/internal/services"
)

// Registered once for the package; promauto metrics cannot be re-registered
// per test.
var testMetrics = metrics.NewMetricsRegistry()

// Mock CatalogReader
type mockCatalogReader struct{}

func (mockCatalogReader) FindSpeciesByName(ctx context.Context, normalizedName string) (*entities.Species, error) {
	return nil, nil
}

func (mockCatalogReader) FindStandByCoordinates(ctx context.Context, easting, northing decimal.Decimal) (*entities.Stand, error) {
	return nil, nil
}

// Mock BundleStore
type mockBundleStore struct {
	saveBundleFunc func(ctx context.Context, bundle *dtos.ImportBundle) (int64, error)
	calls          int
}

func (m *mockBundleStore) SaveBundle(ctx context.Context, bundle *dtos.ImportBundle) (int64, error) {
	m.calls++
	return m.saveBundleFunc(ctx, bundle)
}

func newImportTestHandlers(store *mockBundleStore) *Handlers {
	return NewHandlers(&Dependencies{
		Services: &Services{
			Import: services.NewImportService(mockCatalogReader{}, store),
		},
		Metrics: testMetrics,
	})
}

func TestCommitImport_NullBodyRejected(t *testing.T) {
	store := &mockBundleStore{
		saveBundleFunc: func(ctx context.Context, bundle *dtos.ImportBundle) (int64, error) {
			return 1, nil
		},
	}
	handler := newImportTestHandlers(store).CommitImport()

	req := httptest.NewRequest("POST", "/api/v1/admin/import/commit", strings.NewReader("null"))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "error" {
		t.Errorf("Expected status error, got %s", response.Status)
	}
	if response.Message != constants.MsgBundleInvalid {
		t.Errorf("Expected message %q, got %q", constants.MsgBundleInvalid, response.Message)
	}
	if store.calls != 0 {
		t.Errorf("Expected no commit attempt for null body, got %d", store.calls)
	}
}

func TestCommitImport_InvalidJSON(t *testing.T) {
	store := &mockBundleStore{
		saveBundleFunc: func(ctx context.Context, bundle *dtos.ImportBundle) (int64, error) {
			return 1, nil
		},
	}
	handler := newImportTestHandlers(store).CommitImport()

	req := httptest.NewRequest("POST", "/api/v1/admin/import/commit", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if store.calls != 0 {
		t.Errorf("Expected no commit attempt for malformed body, got %d", store.calls)
	}
}

func TestCommitImport_Success(t *testing.T) {
	store := &mockBundleStore{
		saveBundleFunc: func(ctx context.Context, bundle *dtos.ImportBundle) (int64, error) {
			return 42, nil
		},
	}
	handler := newImportTestHandlers(store).CommitImport()

	bodyBytes, _ := json.Marshal(dtos.ImportBundle{
		Campaign: dtos.CampaignPayload{Name: "Campaña 2024", Year: "2024"},
	})

	req := httptest.NewRequest("POST", "/api/v1/admin/import/commit", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %s", response.Status)
	}
	if response.Message != constants.MsgBundleSaved {
		t.Errorf("Expected message %q, got %q", constants.MsgBundleSaved, response.Message)
	}
	if store.calls != 1 {
		t.Errorf("Expected exactly one commit, got %d", store.calls)
	}
}
