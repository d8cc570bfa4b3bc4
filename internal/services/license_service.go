package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type license struct {
	License struct {
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
}

type licenseService struct {
	client  *http.Client
	baseURL string
}

// LicenseService checks whether a submission's source repository carries a
// root-level license. Only GitHub links are eligible; everything else is
// skipped rather than failed.
type LicenseService interface {
	IsEligible(sourceLink string) bool
	HasLicense(sourceLink string) (bool, error)
}

func NewLicenseService(baseURL string) LicenseService {
	return &licenseService{
		client:  &http.Client{},
		baseURL: baseURL,
	}
}

func (s *licenseService) IsEligible(sourceLink string) bool {
	parsed, err := url.Parse(sourceLink)
	if err != nil {
		return false
	}

	return parsed.Host == "github.com" || parsed.Host == "www.github.com"
}

func (s *licenseService) HasLicense(sourceLink string) (bool, error) {
	owner, repo, err := splitRepoPath(sourceLink)
	if err != nil {
		return false, err
	}

	request, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/repos/%s/%s/license", s.baseURL, owner, repo), nil)
	if err != nil {
		return false, err
	}

	request.Header.Add("Accept", "application/vnd.github+json")

	response, err := s.client.Do(request)
	if err != nil {
		return false, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return false, nil
	}

	if response.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status %d from license lookup", response.StatusCode)
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return false, err
	}

	responseData := new(license)
	if err := json.Unmarshal(responseBody, responseData); err != nil {
		return false, err
	}

	// GitHub reports unrecognised licenses as NOASSERTION.
	return responseData.License.SPDXID != "" && responseData.License.SPDXID != "NOASSERTION", nil
}

func splitRepoPath(sourceLink string) (owner, repo string, err error) {
	parsed, err := url.Parse(sourceLink)
	if err != nil {
		return "", "", err
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("link %q does not point to a repository", sourceLink)
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
