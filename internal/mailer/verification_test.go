package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationEmail(t *testing.T) {
	subject, body := VerificationEmail("Amy", "http://localhost:5000/api/verify-email?token=abc123")

	assert.NotEmpty(t, subject)
	assert.Contains(t, body, "Amy")
	assert.Contains(t, body, "http://localhost:5000/api/verify-email?token=abc123")
}

func TestVerificationEmailEscapesName(t *testing.T) {
	_, body := VerificationEmail("<script>alert(1)</script>", "http://localhost:5000/verify")

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
