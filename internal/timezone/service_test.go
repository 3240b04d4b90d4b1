package timezone

import (
	"testing"

	"weather-widget/internal/types"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Mexico City",
			latitude:  19.43,
			longitude: -99.13,
			want:      "America/Mexico_City",
		},
		{
			name:      "New York City",
			latitude:  40.7128,
			longitude: -74.0060,
			want:      "America/New_York",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_Lookup(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	got, err := svc.Lookup(types.NewCoordinate("40.7", "-74.0"))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "America/New_York" {
		t.Errorf("Lookup() = %v, want America/New_York", got)
	}

	if _, err := svc.Lookup(types.NewCoordinate("north", "-74.0")); err == nil {
		t.Error("Lookup() expected error for non-numeric latitude")
	}
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	b, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if a != b {
		t.Error("NewService() returned different instances")
	}
}
