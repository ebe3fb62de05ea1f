package news

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abelbrown/noticias/internal/format"
)

func TestRawRecordDecode(t *testing.T) {
	body := `[
		{"id": 1, "titulo": "a", "descripcion": "b", "fecha": "2024-03-05T13:00:00Z", "esPremium": true, "imagen": "x.png"},
		{"id": "abc", "titulo": "c", "descripcion": "d", "fecha": 1709643600000, "esPremium": false, "imagen": ""},
		{"id": 3.5, "titulo": "e", "descripcion": "f", "fecha": null}
	]`

	var records []RawRecord
	if err := json.Unmarshal([]byte(body), &records); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if records[0].ID != "1" || records[1].ID != "abc" || records[2].ID != "3.5" {
		t.Errorf("ids = %q %q %q", records[0].ID, records[1].ID, records[2].ID)
	}
	if !records[0].EsPremium || records[0].Imagen != "x.png" {
		t.Errorf("record 0 = %+v", records[0])
	}

	want := time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		got, err := records[i].Fecha.Resolve()
		if err != nil {
			t.Fatalf("record %d Resolve error: %v", i, err)
		}
		if !got.Equal(want) {
			t.Errorf("record %d fecha = %v, want %v", i, got, want)
		}
	}

	if _, err := records[2].Fecha.Resolve(); !errors.Is(err, format.ErrUnparseableTime) {
		t.Errorf("null fecha Resolve err = %v, want ErrUnparseableTime", err)
	}
}

func TestIDRejectsObjects(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
		t.Error("ID should not decode from an object")
	}
}

func TestTimestampKeepsOddValuesAsText(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"float epoch", `1709645400000.0`},
		{"bool", `true`},
		{"object", `{"ms": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.data), &ts); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if ts.Text != tt.data {
				t.Errorf("Text = %q, want %q", ts.Text, tt.data)
			}
			if _, err := ts.Resolve(); !errors.Is(err, format.ErrUnparseableTime) {
				t.Errorf("Resolve err = %v, want ErrUnparseableTime", err)
			}
		})
	}
}

func TestTimestampMarshal(t *testing.T) {
	at := At(time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC))
	data, err := json.Marshal(at)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-03-05T13:00:00Z"` {
		t.Errorf("Marshal(At) = %s", data)
	}

	data, err = json.Marshal(Text("ayer"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"ayer"` {
		t.Errorf("Marshal(Text) = %s", data)
	}
}

func TestTimestampResolvePrefersTime(t *testing.T) {
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := Timestamp{Time: want, Text: "garbage"}
	got, err := ts.Resolve()
	if err != nil || !got.Equal(want) {
		t.Errorf("Resolve() = %v, %v", got, err)
	}
}
