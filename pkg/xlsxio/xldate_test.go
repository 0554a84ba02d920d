package xlsxio

import "testing"

func TestSerialToUnix(t *testing.T) {
	tests := []struct {
		serial   float64
		expected int64
	}{
		{25569, 0},              // 1970-01-01T00:00:00Z
		{25569.5, 43200},        // 1970-01-01T12:00:00Z
		{1, -2208988800},        // 1900-01-01
		{59, -2203977600},       // 1900-02-28
		{60, -2203977600},       // the fictitious 1900-02-29 collapses onto 02-28
		{61, -2203891200},       // 1900-03-01
		{45306.5, 1705320000},   // 2024-01-15T12:00:00Z
		{2958465, 253402214400}, // 9999-12-31
	}

	for _, tt := range tests {
		got := SerialToUnix(tt.serial)
		if got != tt.expected {
			t.Errorf("SerialToUnix(%v) = %d, expected %d", tt.serial, got, tt.expected)
		}
	}
}

func TestUnixToSerial(t *testing.T) {
	tests := []struct {
		unix     int64
		expected float64
	}{
		{0, 25569},
		{43200, 25569.5},
		{-2208988800, 1},      // 1900-01-01
		{-2203891200, 61},     // 1900-03-01
		{1705320000, 45306.5}, // 2024-01-15T12:00:00Z
	}

	for _, tt := range tests {
		got := UnixToSerial(tt.unix)
		if got != tt.expected {
			t.Errorf("UnixToSerial(%d) = %v, expected %v", tt.unix, got, tt.expected)
		}
	}
}

// Timestamps at or after the 1900-03-01 cutover round-trip exactly at
// whole-second precision.
func TestSerialRoundTrip(t *testing.T) {
	samples := []int64{
		-2203891200, // 1900-03-01T00:00:00Z, first post-cutover instant
		-615417000,  // 1950-07-01T13:30:00Z area
		0,
		1,
		43200,
		951782400,    // 2000-02-29
		1705320000,   // 2024-01-15T12:00:00Z
		1705320001,   // one second later
		253402214400, // 9999-12-31
	}

	for _, unix := range samples {
		got := SerialToUnix(UnixToSerial(unix))
		if got != unix {
			t.Errorf("SerialToUnix(UnixToSerial(%d)) = %d, expected %d", unix, got, unix)
		}
	}
}
