package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		TeamSlug: "  team1  ",
		Password: "  pass1234  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "team1", req.TeamSlug)
	assert.Equal(t, "pass1234", req.Password)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	reason := "customer <script>alert('x')</script> request"
	req := PaymentOpRequest{
		PaymentID: "pid-001",
		Reason:    reason,
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	url := "  https://example.com/webhook  "
	req := RegisterRequest{
		TeamSlug:   "team1",
		Password:   "password123",
		WebhookURL: &url,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "https://example.com/webhook", *req.WebhookURL)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := RegisterRequest{
		TeamSlug:   "team1",
		Password:   "password123",
		WebhookURL: nil,
	}
	SanitizeStruct(&req)
	assert.Nil(t, req.WebhookURL)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"ref-001",
		"REF_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ref 001",     // space
		"ref<001>",    // angle brackets
		"ref;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"ref\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestSanitizeStruct_InitRequest(t *testing.T) {
	req := InitRequest{
		OrderID:  "  order-001  ",
		Currency: " RUB ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "order-001", req.OrderID)
	assert.Equal(t, "RUB", req.Currency)
}
