package appointment

import "encoding/json"

// Details are the booking fields stored in an event description.
type Details struct {
	Service   string
	Phone     string
	Reminders bool
}

type wireDetails struct {
	S string `json:"s"`
	P string `json:"p,omitempty"`
	R bool   `json:"r,omitempty"`
}

type legacyDetails struct {
	Service   string `json:"service"`
	Phone     string `json:"phone"`
	Reminders bool   `json:"reminders"`
}

// EncodeDescription stores only the service as plain text when there is no
// phone and no reminder, so descriptions written by hand stay readable.
func EncodeDescription(d Details) string {
	if d.Phone == "" && !d.Reminders {
		return d.Service
	}

	b, err := json.Marshal(wireDetails{S: d.Service, P: d.Phone, R: d.Reminders})
	if err != nil {
		return d.Service
	}
	return string(b)
}

// DecodeDescription accepts the compact {"s","p","r"} form, the long
// {"service","phone","reminders"} form, and anything else as a plain service.
func DecodeDescription(desc string) Details {
	if desc == "" {
		return Details{}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(desc), &probe); err != nil || probe == nil {
		return Details{Service: desc}
	}

	var short wireDetails
	var long legacyDetails
	_ = json.Unmarshal([]byte(desc), &short)
	_ = json.Unmarshal([]byte(desc), &long)

	d := Details{
		Service:   short.S,
		Phone:     short.P,
		Reminders: short.R || long.Reminders,
	}
	if d.Service == "" {
		d.Service = long.Service
	}
	if d.Phone == "" {
		d.Phone = long.Phone
	}
	return d
}
