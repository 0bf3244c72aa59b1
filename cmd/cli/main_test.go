package main

import (
	"encoding/json"
	"testing"
)

func TestBuildSubmitPayload(t *testing.T) {
	payload := buildSubmitPayload("100.50", "transfer", 1, true, "2", "invoice-42", "corr-1")

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded["amount"] != 100.50 {
		t.Errorf("amount = %v, want 100.50", decoded["amount"])
	}
	if decoded["txn_type"] != "transfer" {
		t.Errorf("txn_type = %v", decoded["txn_type"])
	}
	if decoded["account_id"] != float64(1) {
		t.Errorf("account_id = %v", decoded["account_id"])
	}
	if decoded["counterparty_id"] != "2" {
		t.Errorf("counterparty_id = %v", decoded["counterparty_id"])
	}
	if decoded["reference"] != "invoice-42" {
		t.Errorf("reference = %v", decoded["reference"])
	}
	if decoded["correlation_id"] != "corr-1" {
		t.Errorf("correlation_id = %v", decoded["correlation_id"])
	}
}

func TestBuildSubmitPayloadOmitsUnsetFields(t *testing.T) {
	payload := buildSubmitPayload("100", "deposit", 0, false, "", "", "")

	for _, key := range []string{"account_id", "counterparty_id", "reference", "correlation_id"} {
		if _, present := payload[key]; present {
			t.Errorf("unset field %s present in payload", key)
		}
	}
}
