package brochure

import (
	"encoding/json"
	"testing"
)

func TestElementJSON(t *testing.T) {
	e := Element{X: 10, Y: 20, Width: 100, Height: 50, Kind: TextElement}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}

	expected := `{"x":10,"y":20,"width":100,"height":50,"kind":"text"}`
	if string(data) != expected {
		t.Errorf("unexpected JSON: %s", data)
	}

	var back Element
	err = json.Unmarshal(data, &back)
	if err != nil {
		t.Fatal(err)
	}
	if back != e {
		t.Errorf("round-trip changed the element: %+v", back)
	}

	err = json.Unmarshal([]byte(`{"kind":"video"}`), &back)
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}
