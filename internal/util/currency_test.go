package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "₹0"},
		{name: "below first group", amount: 999, want: "₹999"},
		{name: "thousands", amount: 12345, want: "₹12,345"},
		{name: "lakhs", amount: 1234567, want: "₹12,34,567"},
		{name: "crores", amount: 123456789, want: "₹12,34,56,789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.amount))
		})
	}
}

func TestFormatINRAmount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "whole rupees", value: "1234567", want: "₹12,34,567"},
		{name: "keeps paise", value: "50000.75", want: "₹50,000.75"},
		{name: "zero", value: "0", want: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINRAmount(decimal.RequireFromString(tt.value)))
		})
	}
}
