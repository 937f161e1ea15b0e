package assetbook

import "testing"

func TestJsonObjectWriter_FieldOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", 1)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	// fields keep their append order, unlike encoding/json maps
	if want := `{"b":2,"a":1}`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Append("kept", "x")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if want := `{"kept":"x"}`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_EmbedFrom(t *testing.T) {
	var w jsonObjectWriter
	w.EmbedFrom(struct {
		A int `json:"a"`
	}{A: 1})
	w.Append("b", 2)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if want := `{"a":1,"b":2}`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if want := `{}`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
