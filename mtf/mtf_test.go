package mtf

import (
	"bytes"
	"reflect"
	"testing"
)

func TestMtfCanEncodeAndDecode(t *testing.T) {
	input := "bananaaa"
	expectedFromEncode := []byte{98, 98, 110, 1, 1, 1, 0, 0}
	encoded := Encode([]byte(input))

	if !reflect.DeepEqual(expectedFromEncode, encoded) {
		t.Fatalf("expected encode did not match encoded. got\n%+v\nwanted\n%+v\n", encoded, expectedFromEncode)
	}

	decoded := Decode(encoded)
	if string(decoded) != input {
		t.Fatalf("decoded did not match input. got\n%s\nwanted\n%s\n", string(decoded), input)
	}
}

func TestMtfEmptyInputStaysEmpty(t *testing.T) {
	encoded := Encode([]byte{})
	if len(encoded) != 0 {
		t.Fatalf("expected empty encode output, got %d bytes", len(encoded))
	}

	decoded := Decode([]byte{})
	if len(decoded) != 0 {
		t.Fatalf("expected empty decode output, got %d bytes", len(decoded))
	}
}

func TestMtfRunsCollapseToZeroRanks(t *testing.T) {
	input := bytes.Repeat([]byte{0x41}, 64)
	encoded := Encode(input)

	if encoded[0] != 0x41 {
		t.Fatalf("first rank should be the byte value itself, got %d", encoded[0])
	}

	for idx, rank := range encoded[1:] {
		if rank != 0 {
			t.Fatalf("rank at %d should be 0 inside a run, got %d", idx+1, rank)
		}
	}

	decoded := Decode(encoded)
	if !reflect.DeepEqual(input, decoded) {
		t.Fatal("decoded did not match input")
	}
}

func TestMtfRoundTripsFullAlphabet(t *testing.T) {
	input := make([]byte, BYTE_LMT)
	for idx := 0; idx < BYTE_LMT; idx++ {
		input[idx] = byte(idx)
	}

	encoded := Encode(input)
	decoded := Decode(encoded)

	if !reflect.DeepEqual(input, decoded) {
		t.Fatal("decoded did not match input")
	}
}

func TestMtfDecodeKeepsListInSyncWithEncode(t *testing.T) {
	// Every symbol of "BA@" encodes to rank 66, so decode only recovers
	// the input if it reorders its list the same way encode did.
	input := "BA@"
	expectedFromEncode := []byte{66, 66, 66}
	encoded := Encode([]byte(input))

	if !reflect.DeepEqual(expectedFromEncode, encoded) {
		t.Fatalf("expected encode did not match encoded. got\n%+v\nwanted\n%+v\n", encoded, expectedFromEncode)
	}

	decoded := Decode(encoded)
	if string(decoded) != input {
		t.Fatalf("decoded did not match input. got\n%s\nwanted\n%s\n", string(decoded), input)
	}
}

func TestCanEncodeAndDecodeMtfWithLongInput(t *testing.T) {
	input := "The lighthouse keeper logged the same entry every evening for forty years, noting the wind, the swell, and the ships that passed beyond the shoals. Some nights the fog rolled in so thick that the beam seemed to dissolve a few meters past the lantern room, and he would sound the horn until dawn. Sailors who had never met him trusted the light all the same, setting their course by a man they knew only as a sweep of brightness on the horizon. When the station was finally automated, the keeper left his logbooks stacked in the watch room, a paper record of ten thousand uneventful nights, which is to say ten thousand nights where everyone made it home."

	encoded := Encode([]byte(input))

	decoded := Decode(encoded)

	if string(decoded) != input {
		t.Fatal("decoded did not match encoded")
	}
}
