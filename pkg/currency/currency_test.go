package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "valid upper", code: "USD", want: "USD"},
		{name: "valid lower", code: "inr", want: "INR"},
		{name: "padded", code: " eur ", want: "EUR"},
		{name: "too short", code: "US", want: "USD"},
		{name: "too long", code: "USDT", want: "USD"},
		{name: "digits", code: "U5D", want: "USD"},
		{name: "empty", code: "", want: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.code, "USD"))
		})
	}
}
