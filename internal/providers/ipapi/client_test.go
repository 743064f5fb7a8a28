package ipapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Geolocate(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		payload     string
		wantErr     bool
		errContains string
		wantLat     float64
		wantLon     float64
	}{
		{
			name:    "successful lookup",
			status:  http.StatusOK,
			payload: `{"status":"success","lat":39.11539,"lon":-107.6584,"city":"Aspen","country":"United States"}`,
			wantLat: 39.11539,
			wantLon: -107.6584,
		},
		{
			name:        "api-level failure",
			status:      http.StatusOK,
			payload:     `{"status":"fail","message":"private range"}`,
			wantErr:     true,
			errContains: "private range",
		},
		{
			name:        "http failure",
			status:      http.StatusTooManyRequests,
			payload:     `slow down`,
			wantErr:     true,
			errContains: "status 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			client := NewClientWithBaseURL(server.URL)

			resp, err := client.Geolocate(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatal("Geolocate() expected error but got none")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Geolocate() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Geolocate() unexpected error = %v", err)
			}
			if resp.Lat != tt.wantLat || resp.Lon != tt.wantLon {
				t.Errorf("Geolocate() = %v,%v, want %v,%v", resp.Lat, resp.Lon, tt.wantLat, tt.wantLon)
			}
		})
	}
}
