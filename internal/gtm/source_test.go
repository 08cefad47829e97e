package gtm

import (
	"testing"

	tagmanager "google.golang.org/api/tagmanager/v2"

	"gtmdiff/internal/entity"
)

func TestToValues(t *testing.T) {
	tags := []*tagmanager.Tag{
		{
			Name:  "GA4 Config",
			TagId: "12",
			Type:  "gaawc",
			Parameter: []*tagmanager.Parameter{
				{Key: "measurementId", Value: "G-123", Type: "template"},
			},
		},
	}

	values, err := toValues(tags)
	if err != nil {
		t.Fatalf("toValues() error = %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("toValues() = %d values, want 1", len(values))
	}

	v := values[0]
	if got := entity.StringField(v, "name"); got != "GA4 Config" {
		t.Errorf("name = %q, want %q", got, "GA4 Config")
	}
	if got := entity.StringField(v, "tagId"); got != "12" {
		t.Errorf("tagId = %q, want %q", got, "12")
	}

	flat := entity.Flatten(v)
	if got, ok := flat["parameter[0].value"]; !ok || got.V != "G-123" {
		t.Errorf("parameter[0].value = %v, want G-123 (flat: %v)", got, flat)
	}
}

func TestToValuesEmpty(t *testing.T) {
	values, err := toValues([]*tagmanager.Tag{})
	if err != nil {
		t.Fatalf("toValues() error = %v", err)
	}
	if len(values) != 0 {
		t.Errorf("toValues() = %d values, want 0", len(values))
	}
}
