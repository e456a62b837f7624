package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	payload := []byte(`{"workflow_name":"Build"}`)

	t.Run("Valid Signature", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "topsecret"})
		if err := v.ValidateSignature(payload, sign("topsecret", payload)); err != nil {
			t.Errorf("expected valid signature, got %v", err)
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "topsecret"})
		if err := v.ValidateSignature(payload, sign("other", payload)); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("Tampered Payload", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "topsecret"})
		sig := sign("topsecret", payload)
		if err := v.ValidateSignature([]byte(`{"workflow_name":"Hacked"}`), sig); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("Missing Prefix", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "topsecret"})
		if err := v.ValidateSignature(payload, "deadbeef"); err == nil {
			t.Error("expected format error")
		}
	})

	t.Run("Bad Hex", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{Secret: "topsecret"})
		if err := v.ValidateSignature(payload, "sha256=zzzz"); err == nil {
			t.Error("expected hex error")
		}
	})

	t.Run("No Secret Configured Skips Check", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{})
		if err := v.ValidateSignature(payload, ""); err != nil {
			t.Errorf("expected skip, got %v", err)
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	t.Run("Empty Allowlist Admits All", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.9:31337"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("expected allow, got %v", err)
		}
	})

	t.Run("Exact Match", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"203.0.113.9"}})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.9:31337"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("expected allow, got %v", err)
		}
	})

	t.Run("CIDR Match", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"192.30.252.0/22"}})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "192.30.253.7:443"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("expected allow, got %v", err)
		}
	})

	t.Run("Rejected", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"10.0.0.1"}})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.9:31337"
		if err := v.ValidateIPAddress(r); err == nil {
			t.Error("expected rejection")
		}
	})

	t.Run("X-Forwarded-For Takes First Hop", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"198.51.100.4"}})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "10.0.0.2:80"
		r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.2")
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("expected allow via XFF, got %v", err)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("Allows Within Burst", func(t *testing.T) {
		rl := newRateLimiter(600) // burst 60
		for i := 0; i < 10; i++ {
			if err := rl.Allow("github"); err != nil {
				t.Fatalf("request %d unexpectedly limited: %v", i, err)
			}
		}
	})

	t.Run("Blocks Past Burst", func(t *testing.T) {
		rl := newRateLimiter(10) // burst 1
		if err := rl.Allow("github"); err != nil {
			t.Fatalf("first request limited: %v", err)
		}
		if err := rl.Allow("github"); err == nil {
			t.Error("expected second immediate request to be limited")
		}
	})

	t.Run("Sources Are Independent", func(t *testing.T) {
		rl := newRateLimiter(10)
		rl.Allow("a")
		if err := rl.Allow("b"); err != nil {
			t.Errorf("separate source limited: %v", err)
		}
	})
}
