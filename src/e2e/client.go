package main

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// The AI service is expected to already be listening here; bringing it
	// up is the deploy/compose side's responsibility.
	defaultBaseURL = "http://localhost:8000/"

	expectedMessage = "AI Service is running"
)

// newClient returns the HTTP client used for the smoke check. Callers
// release it with CloseIdleConnections when done.
func newClient() *http.Client {
	return &http.Client{}
}

// checkRoot issues a single GET against the service root and verifies the
// running-service contract: status 200 and exactly
// {"message": "AI Service is running"}.
func checkRoot(client *http.Client, baseURL string) error {
	resp, err := client.Get(baseURL)
	if err != nil {
		return fmt.Errorf("failed to reach AI service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("AI service returned status %d, expected %d", resp.StatusCode, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode AI service response: %w", err)
	}

	if len(body) != 1 || body["message"] != expectedMessage {
		return fmt.Errorf("unexpected AI service response body: %v", body)
	}

	return nil
}

// runSmokeCheck acquires a client, runs the root check once and releases
// the client on every exit path.
func runSmokeCheck(baseURL string) error {
	client := newClient()
	defer client.CloseIdleConnections()

	return checkRoot(client, baseURL)
}
