package capture

import (
	"bytes"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewLogger(false)
	log.SetOutput(&out, &errOut)

	log.Debug("hidden %d", 1)
	log.Warn("hidden %d", 2)
	log.Error("shown %d", 3)
	if out.Len() != 0 {
		t.Errorf("disabled logger wrote debug output %q", out.String())
	}
	if errOut.String() != "[vkdump ERROR] shown 3\n" {
		t.Errorf("stderr = %q", errOut.String())
	}

	errOut.Reset()
	log.SetEnabled(true)
	log.Debug("step %s", "a")
	log.Warn("slow")
	if out.String() != "[vkdump DEBUG] step a\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if errOut.String() != "[vkdump WARN] slow\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestNilLogger(t *testing.T) {
	var log *Logger
	log.Debug("x")
	log.Warn("x")
	log.Error("x")
}
