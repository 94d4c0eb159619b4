package logger

import "testing"

func TestGetInitializesOnDemand(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get should never return nil")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Init("development")
	first := Get()
	Init("production")
	if Get() != first {
		t.Error("a second Init must not replace the logger")
	}
}
