package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligible(t *testing.T) {
	service := NewLicenseService("http://unused")

	assert.True(t, service.IsEligible("https://github.com/owner/repo"))
	assert.True(t, service.IsEligible("https://www.github.com/owner/repo"))
	assert.False(t, service.IsEligible("https://gitlab.com/owner/repo"))
	assert.False(t, service.IsEligible("not a url ::"))
}

func TestHasLicense_RecognisedLicense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/license", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"license":{"spdx_id":"MIT"}}`))
	}))
	defer server.Close()

	service := NewLicenseService(server.URL)

	hasLicense, err := service.HasLicense("https://github.com/owner/repo")
	assert.NoError(t, err)
	assert.True(t, hasLicense)
}

func TestHasLicense_MissingLicense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	service := NewLicenseService(server.URL)

	hasLicense, err := service.HasLicense("https://github.com/owner/repo")
	assert.NoError(t, err)
	assert.False(t, hasLicense)
}

func TestHasLicense_UnrecognisedLicense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"license":{"spdx_id":"NOASSERTION"}}`))
	}))
	defer server.Close()

	service := NewLicenseService(server.URL)

	hasLicense, err := service.HasLicense("https://github.com/owner/repo")
	assert.NoError(t, err)
	assert.False(t, hasLicense)
}

func TestHasLicense_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewLicenseService(server.URL)

	_, err := service.HasLicense("https://github.com/owner/repo")
	assert.Error(t, err)
}

func TestHasLicense_MalformedLink(t *testing.T) {
	service := NewLicenseService("http://unused")

	_, err := service.HasLicense("https://github.com/owner")
	assert.Error(t, err)
}

func TestSplitRepoPath(t *testing.T) {
	owner, repo, err := splitRepoPath("https://github.com/owner/repo.git")
	assert.NoError(t, err)
	assert.Equal(t, "owner", owner)
	assert.Equal(t, "repo", repo)
}
