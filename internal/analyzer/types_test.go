package analyzer

import "testing"

func TestIsBareNamedType(t *testing.T) {
	tests := []struct {
		typeText string
		want     bool
	}{
		{"IOrderRepository", true},
		{"Order", true},
		{"Order?", true},
		{"int", false},
		{"string", false},
		{"void", false},
		{"List<Order>", false},
		{"System.DateTime", false},
		{"byte[]", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isBareNamedType(tt.typeText); got != tt.want {
			t.Errorf("isBareNamedType(%q) = %v, want %v", tt.typeText, got, tt.want)
		}
	}
}
