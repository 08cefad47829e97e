package entity

import (
	"reflect"
	"testing"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"name": "GA4 Event",
		"tagId": "12",
		"paused": false,
		"priority": null,
		"parameter": [{"key": "eventName", "value": "purchase"}]
	}`)

	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	want := Mapping{
		"name":     Scalar{V: "GA4 Event"},
		"tagId":    Scalar{V: "12"},
		"paused":   Scalar{V: false},
		"priority": Scalar{V: nil},
		"parameter": Sequence{
			Mapping{"key": Scalar{V: "eventName"}, "value": Scalar{V: "purchase"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromJSON() = %v, want %v", got, want)
	}
}

func TestFromJSONInvalid(t *testing.T) {
	if _, err := FromJSON([]byte("{not json")); err == nil {
		t.Error("FromJSON() expected error for invalid input")
	}
}

func TestScalarRender(t *testing.T) {
	tests := []struct {
		name string
		in   Scalar
		want string
	}{
		{"string", Scalar{V: "hello"}, "hello"},
		{"empty string", Scalar{V: ""}, ""},
		{"nil", Scalar{V: nil}, ""},
		{"bool", Scalar{V: true}, "true"},
		{"whole float", Scalar{V: float64(2)}, "2"},
		{"fractional float", Scalar{V: 2.5}, "2.5"},
		{"large whole float", Scalar{V: float64(1000000)}, "1000000"},
		{"large fractional float", Scalar{V: 2500000.5}, "2500000.5"},
		{"int", Scalar{V: 42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScalarEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want bool
	}{
		{"same string", Scalar{V: "x"}, Scalar{V: "x"}, true},
		{"different string", Scalar{V: "x"}, Scalar{V: "y"}, false},
		{"string vs number", Scalar{V: "1"}, Scalar{V: float64(1)}, false},
		{"both nil", Scalar{V: nil}, Scalar{V: nil}, true},
		{"nil vs empty string", Scalar{V: nil}, Scalar{V: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringField(t *testing.T) {
	m := Mapping{
		"name":  Scalar{V: "T1"},
		"empty": Scalar{V: ""},
		"num":   Scalar{V: float64(3)},
		"sub":   Mapping{},
	}

	tests := []struct {
		name string
		v    Value
		key  string
		want string
	}{
		{"present", m, "name", "T1"},
		{"empty string", m, "empty", ""},
		{"non-string scalar", m, "num", ""},
		{"non-scalar field", m, "sub", ""},
		{"absent", m, "missing", ""},
		{"non-mapping root", Scalar{V: "x"}, "name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringField(tt.v, tt.key); got != tt.want {
				t.Errorf("StringField(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
