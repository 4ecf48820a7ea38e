package writer

import (
	"bytes"
	"reflect"
	"testing"
)

func TestBlockWriterFramesIndexBeforeColumn(t *testing.T) {
	var buf bytes.Buffer
	blockWriter := NewBlockWriter(&buf)

	err := blockWriter.WriteBlock(3, []byte("nnbaaa"))
	if err != nil {
		t.Fatalf("write failed: %s", err)
	}

	expected := append([]byte{3, 0, 0, 0}, []byte("nnbaaa")...)
	if !reflect.DeepEqual(buf.Bytes(), expected) {
		t.Fatalf("framed record did not match. got\n%v\nwanted\n%v\n", buf.Bytes(), expected)
	}
}

func TestBlockWriterAppendsRecordsBackToBack(t *testing.T) {
	var buf bytes.Buffer
	blockWriter := NewBlockWriter(&buf)

	err := blockWriter.WriteBlock(1, []byte("abcd"))
	if err != nil {
		t.Fatalf("write failed: %s", err)
	}

	err = blockWriter.WriteBlock(258, []byte("xy"))
	if err != nil {
		t.Fatalf("write failed: %s", err)
	}

	expected := []byte{1, 0, 0, 0, 'a', 'b', 'c', 'd', 2, 1, 0, 0, 'x', 'y'}
	if !reflect.DeepEqual(buf.Bytes(), expected) {
		t.Fatalf("framed records did not match. got\n%v\nwanted\n%v\n", buf.Bytes(), expected)
	}
}
