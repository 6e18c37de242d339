//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "synqchain-api"
	ConsumerName = "procurement-dashboard"

	StateBaseline  = "purchase orders baseline"
	StateDraftPO   = "purchase order p1 in draft"
	StatePendingPO = "purchase order p1 pending approval"
	StatePOMissing = "no purchase order missing-po"
)

const (
	ExistingPOID = "p1"
	MissingPOID  = "missing-po"
)

const (
	exampleVendor   = "Initech Supply Co"
	exampleCurrency = "USD"
	exampleAmount   = 1200.50
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the dashboard consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExamplePurchaseOrderPayload provides stable test data for pact interactions.
func ExamplePurchaseOrderPayload() map[string]any {
	return map[string]any{
		"id":       ExistingPOID,
		"number":   "PO-1001",
		"vendor":   exampleVendor,
		"amount":   exampleAmount,
		"currency": exampleCurrency,
		"status":   "DRAFT",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
