package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_PROJECT_ID", "vishalaksha-test")
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "/etc/firebase/sa.json")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret123")
}

func TestLoad_FromEnvironmentOnly(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "vishalaksha-test", cfg.FirebaseProjectID)
	assert.Equal(t, "/etc/firebase/sa.json", cfg.FirebaseCredentialsFile)
	assert.Equal(t, "rzp_test_key", cfg.RazorpayKeyID)
	assert.Equal(t, "secret123", cfg.RazorpayKeySecret)

	// Defaults still apply alongside env-only values.
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "firebase", cfg.StorageBackend)
	assert.Equal(t, int64(11000), cfg.ConsultationRate)
	assert.Equal(t, "vishalaksha-test.firebasestorage.app", cfg.StorageBucket)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
}

func TestLoad_CloudinaryBackendRequiresCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_BACKEND", "cloudinary")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLOUDINARY")
}

func TestLoad_StorageBucketOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORAGE_BUCKET", "custom-bucket")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "custom-bucket", cfg.StorageBucket)
}
