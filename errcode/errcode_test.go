package errcode

import (
	"errors"
	"testing"
)

func TestCodeIsError(t *testing.T) {
	var err error = SensorTimeout
	if err.Error() != "sensor_timeout" {
		t.Fatalf("Error()=%q", err.Error())
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("Of(nil) != OK")
	}
	if Of(SensorTimeout) != SensorTimeout {
		t.Fatal("Of(SensorTimeout) lost code")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatal("Of(generic) != Error")
	}
}
