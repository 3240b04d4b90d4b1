package forecast

import (
	"errors"
	"strings"
	"testing"

	"weather-widget/internal/providers/openmeteo"
)

func temps(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		daily     *openmeteo.DailyBlock
		wantMax   float64
		wantColor Color
	}{
		{
			name: "hot week is red",
			daily: &openmeteo.DailyBlock{
				Time:             []string{"2024-01-01", "2024-01-02"},
				Temperature2MMax: temps(32, 28),
			},
			wantMax:   32,
			wantColor: ColorRed,
		},
		{
			name: "cold week is blue",
			daily: &openmeteo.DailyBlock{
				Time:             []string{"2024-01-01", "2024-01-02"},
				Temperature2MMax: temps(5, 8),
			},
			wantMax:   8,
			wantColor: ColorBlue,
		},
		{
			name: "mild week is green",
			daily: &openmeteo.DailyBlock{
				Time:             []string{"2024-01-01", "2024-01-02"},
				Temperature2MMax: temps(15, 20),
			},
			wantMax:   20,
			wantColor: ColorGreen,
		},
		{
			name: "single day",
			daily: &openmeteo.DailyBlock{
				Time:             []string{"2024-03-01"},
				Temperature2MMax: temps(12),
			},
			wantMax:   12,
			wantColor: ColorGreen,
		},
		{
			name: "negative temperatures",
			daily: &openmeteo.DailyBlock{
				Time:             []string{"2024-01-01", "2024-01-02", "2024-01-03"},
				Temperature2MMax: temps(-12.5, -3.2, -7),
			},
			wantMax:   -3.2,
			wantColor: ColorBlue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.daily)
			if err != nil {
				t.Fatalf("Build() unexpected error = %v", err)
			}

			if got.MaxTemperature != tt.wantMax {
				t.Errorf("MaxTemperature = %v, want %v", got.MaxTemperature, tt.wantMax)
			}
			if got.Color != tt.wantColor {
				t.Errorf("Color = %v, want %v", got.Color, tt.wantColor)
			}
			if got.Len() != len(tt.daily.Time) || len(got.Labels) != len(tt.daily.Time) {
				t.Fatalf("series length = %d/%d, want %d", len(got.Labels), got.Len(), len(tt.daily.Time))
			}
			for i := range tt.daily.Time {
				if got.Labels[i] != tt.daily.Time[i] {
					t.Errorf("Labels[%d] = %q, want %q", i, got.Labels[i], tt.daily.Time[i])
				}
				if got.Values[i] != *tt.daily.Temperature2MMax[i] {
					t.Errorf("Values[%d] = %v, want %v", i, got.Values[i], *tt.daily.Temperature2MMax[i])
				}
			}
		})
	}
}

func TestBuild_DataShapeErrors(t *testing.T) {
	tests := []struct {
		name        string
		daily       *openmeteo.DailyBlock
		errContains string
	}{
		{
			name:        "missing daily block",
			daily:       nil,
			errContains: "no daily block",
		},
		{
			name:        "empty arrays",
			daily:       &openmeteo.DailyBlock{},
			errContains: "no temperatures",
		},
		{
			name: "unequal lengths",
			daily: &openmeteo.DailyBlock{
				Time:             []string{"2024-01-01", "2024-01-02"},
				Temperature2MMax: temps(10),
			},
			errContains: "2 dates but 1 temperatures",
		},
		{
			name: "null temperature",
			daily: &openmeteo.DailyBlock{
				Time:             []string{"2024-01-01", "2024-01-02"},
				Temperature2MMax: []*float64{temps(10)[0], nil},
			},
			errContains: "missing temperature for 2024-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.daily)

			var shapeErr *DataShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("Build() error = %v, want *DataShapeError", err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Build() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		maxTemp float64
		want    Color
	}{
		{maxTemp: 30.1, want: ColorRed},
		{maxTemp: 30, want: ColorGreen},
		{maxTemp: 10, want: ColorGreen},
		{maxTemp: 9.9, want: ColorBlue},
		{maxTemp: 12, want: ColorGreen},
	}

	for _, tt := range tests {
		if got := ColorFor(tt.maxTemp); got != tt.want {
			t.Errorf("ColorFor(%v) = %v, want %v", tt.maxTemp, got, tt.want)
		}
	}
}

func TestBuild_CopiesLabels(t *testing.T) {
	daily := &openmeteo.DailyBlock{
		Time:             []string{"2024-01-01"},
		Temperature2MMax: temps(15),
	}

	got, err := Build(daily)
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}

	daily.Time[0] = "changed"
	if got.Labels[0] != "2024-01-01" {
		t.Errorf("Labels[0] = %q, series shares memory with the response", got.Labels[0])
	}
}
