package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDescription(t *testing.T) {
	assert.Equal(t, "Corte", EncodeDescription(Details{Service: "Corte"}))
	assert.JSONEq(t, `{"s":"Corte","p":"600111222","r":true}`,
		EncodeDescription(Details{Service: "Corte", Phone: "600111222", Reminders: true}))
	assert.JSONEq(t, `{"s":"Corte","p":"600111222"}`,
		EncodeDescription(Details{Service: "Corte", Phone: "600111222"}))
}

func TestDecodeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Details
	}{
		{"empty", "", Details{}},
		{"plain text", "Corte y peinado", Details{Service: "Corte y peinado"}},
		{"compact", `{"s":"Mechas","p":"600111222","r":true}`, Details{Service: "Mechas", Phone: "600111222", Reminders: true}},
		{"long keys", `{"service":"Mechas","phone":"600","reminders":true}`, Details{Service: "Mechas", Phone: "600", Reminders: true}},
		{"json scalar is plain text", `42`, Details{Service: "42"}},
		{"json array is plain text", `["a"]`, Details{Service: `["a"]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeDescription(tt.in))
		})
	}
}
