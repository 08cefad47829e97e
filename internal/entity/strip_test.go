package entity

import (
	"reflect"
	"testing"
)

func testNoise() KeySet {
	return NewKeySet([]string{"fingerprint", "path", "accountId"})
}

func TestStripRemovesNoiseAtEveryDepth(t *testing.T) {
	tree := Mapping{
		"name":        Scalar{V: "T1"},
		"fingerprint": Scalar{V: "abc"},
		"parameter": Sequence{
			Mapping{
				"key":  Scalar{V: "url"},
				"path": Scalar{V: "accounts/1/containers/2"},
			},
		},
		"nested": Mapping{
			"accountId": Scalar{V: "1"},
			"keep":      Scalar{V: "yes"},
		},
	}

	got := Strip(tree, testNoise())

	want := Mapping{
		"name": Scalar{V: "T1"},
		"parameter": Sequence{
			Mapping{"key": Scalar{V: "url"}},
		},
		"nested": Mapping{"keep": Scalar{V: "yes"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strip() = %v, want %v", got, want)
	}
}

func TestStripDoesNotMutateInput(t *testing.T) {
	tree := Mapping{
		"fingerprint": Scalar{V: "abc"},
		"inner":       Mapping{"path": Scalar{V: "x"}, "keep": Scalar{V: "y"}},
	}

	Strip(tree, testNoise())

	if _, ok := tree["fingerprint"]; !ok {
		t.Error("Strip() mutated input: top-level noise key removed")
	}
	inner := tree["inner"].(Mapping)
	if _, ok := inner["path"]; !ok {
		t.Error("Strip() mutated input: nested noise key removed")
	}
}

func TestStripIdempotent(t *testing.T) {
	tree := Mapping{
		"name":        Scalar{V: "T1"},
		"fingerprint": Scalar{V: "abc"},
		"list":        Sequence{Mapping{"accountId": Scalar{V: "1"}}},
	}

	once := Strip(tree, testNoise())
	twice := Strip(once, testNoise())

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Strip() not idempotent: %v vs %v", once, twice)
	}
}

func TestStripPassesScalarsAndSequences(t *testing.T) {
	tests := []struct {
		name string
		tree Value
	}{
		{"scalar", Scalar{V: "x"}},
		{"nil scalar", Scalar{V: nil}},
		{"sequence of scalars", Sequence{Scalar{V: float64(1)}, Scalar{V: float64(2)}}},
		{"empty mapping", Mapping{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.tree, testNoise())
			if !reflect.DeepEqual(got, tt.tree) {
				t.Errorf("Strip() = %v, want unchanged %v", got, tt.tree)
			}
		})
	}
}
