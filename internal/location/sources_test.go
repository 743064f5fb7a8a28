package location

import (
	"context"
	"errors"
	"testing"

	"skycast/internal/providers/ipapi"
	"skycast/internal/types"
)

type mockGeolocator struct {
	response *ipapi.GeolocateAPIResponse
	err      error
}

func (m *mockGeolocator) Geolocate(ctx context.Context) (*ipapi.GeolocateAPIResponse, error) {
	return m.response, m.err
}

func TestIPSource_Run(t *testing.T) {
	tests := []struct {
		name       string
		geolocator *mockGeolocator
		wantFixes  int
		wantCoords types.Coords
	}{
		{
			name: "successful geolocation delivers one fix",
			geolocator: &mockGeolocator{
				response: &ipapi.GeolocateAPIResponse{
					Status: "success",
					Lat:    39.11539,
					Lon:    -107.65840,
					City:   "Aspen",
				},
			},
			wantFixes:  1,
			wantCoords: types.NewCoords(39.11539, -107.65840),
		},
		{
			name:       "failed geolocation delivers an empty batch",
			geolocator: &mockGeolocator{err: errors.New("network down")},
			wantFixes:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewIPSourceWithGeolocator(tt.geolocator, discardLogger())

			updates := source.Run(context.Background())
			batch, ok := <-updates
			if !ok {
				t.Fatal("updates channel closed before delivering a batch")
			}
			if len(batch) != tt.wantFixes {
				t.Fatalf("batch has %d fixes, want %d", len(batch), tt.wantFixes)
			}
			if tt.wantFixes > 0 && batch[0] != tt.wantCoords {
				t.Errorf("batch[0] = %v, want %v", batch[0], tt.wantCoords)
			}
			if _, ok := <-updates; ok {
				t.Error("updates channel delivered a second batch, want closed")
			}
		})
	}
}

func TestGate_WithIPSource(t *testing.T) {
	geolocator := &mockGeolocator{
		response: &ipapi.GeolocateAPIResponse{
			Status: "success",
			Lat:    51.5074,
			Lon:    -0.1278,
		},
	}
	source := NewIPSourceWithGeolocator(geolocator, discardLogger())
	gate := NewGate(source, discardLogger())

	gate.Run(context.Background())

	got, set := gate.Current()
	if !set {
		t.Fatal("gate unset after successful geolocation")
	}
	if want := types.NewCoords(51.5074, -0.1278); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}
}
