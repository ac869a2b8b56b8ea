package config

import (
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	c := New()

	if c.Scheme != "imgt" {
		t.Errorf("default scheme = %q, want imgt", c.Scheme)
	}
	if c.Verbose {
		t.Error("verbose defaulted to true, want false")
	}
}
